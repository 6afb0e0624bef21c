package port

import (
	"context"
	"io"
)

// ObjectInfo identifies one stored object in the reference corpus.
type ObjectInfo struct {
	Key  string
	Size int64
}

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ObjectStorage abstracts cloud object storage. The duplicate checker lists
// and downloads reference documents from a bucket prefix; uploads let
// reviewers grow the corpus.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	List(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
	Delete(ctx context.Context, bucket, key string) error
}
