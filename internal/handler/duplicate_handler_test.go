package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/handler"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func duplicateRouter(svc *mocks.MockDuplicateService) *gin.Engine {
	r := gin.New()
	r.POST("/duplicates/check", handler.NewDuplicateHandler(svc, testConfig()).Check)
	return r
}

func TestDuplicateHandler_Check(t *testing.T) {
	svc := new(mocks.MockDuplicateService)
	svc.On("Check", mock.Anything, mock.Anything, "target.pdf", "/corpus").Return(&domain.DuplicateReport{
		TargetFile: "target.pdf",
		Verdict:    domain.DuplicateVerdictLikely,
	}, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "target.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("source_dir", "/corpus"))
	require.NoError(t, w.Close())

	rec := doRequest(duplicateRouter(svc), http.MethodPost, "/duplicates/check", &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domain.DuplicateVerdictLikely))
	svc.AssertExpectations(t)
}

func TestDuplicateHandler_AcceptsImageTarget(t *testing.T) {
	svc := new(mocks.MockDuplicateService)
	svc.On("Check", mock.Anything, mock.Anything, "scan.jpg", "").Return(&domain.DuplicateReport{
		TargetFile: "scan.jpg",
		Verdict:    domain.DuplicateVerdictNone,
	}, nil)

	body, ct := multipartBody(t, "file", "scan.jpg")
	rec := doRequest(duplicateRouter(svc), http.MethodPost, "/duplicates/check", body, ct)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDuplicateHandler_MissingFile(t *testing.T) {
	svc := new(mocks.MockDuplicateService)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())
	rec := doRequest(duplicateRouter(svc), http.MethodPost, "/duplicates/check", &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Check", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDuplicateHandler_EmptyCorpus(t *testing.T) {
	svc := new(mocks.MockDuplicateService)
	svc.On("Check", mock.Anything, mock.Anything, "target.pdf", "").Return(nil, domain.ErrCorpusUnavailable)

	body, ct := multipartBody(t, "file", "target.pdf")
	rec := doRequest(duplicateRouter(svc), http.MethodPost, "/duplicates/check", body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CORPUS_UNAVAILABLE")
}
