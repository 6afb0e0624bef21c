package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/handler"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func authRouter(svc *mocks.MockAuthService) *gin.Engine {
	r := gin.New()
	r.POST("/auth/token", handler.NewAuthHandler(svc).Token)
	return r
}

func TestAuthHandler_Token(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("IssueToken", "topsecret").Return("signed.jwt.token", time.Now().Add(time.Hour), nil)

	body := strings.NewReader(`{"review_key":"topsecret"}`)
	rec := doRequest(authRouter(svc), http.MethodPost, "/auth/token", body, "application/json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_WrongKey(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("IssueToken", "guess").Return("", time.Time{}, domain.ErrUnauthorized)

	body := strings.NewReader(`{"review_key":"guess"}`)
	rec := doRequest(authRouter(svc), http.MethodPost, "/auth/token", body, "application/json")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_MissingKey(t *testing.T) {
	svc := new(mocks.MockAuthService)

	rec := doRequest(authRouter(svc), http.MethodPost, "/auth/token", strings.NewReader(`{}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "IssueToken", mock.Anything)
}
