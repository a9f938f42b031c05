package repository

import (
	"context"

	"sharehub/internal/model"
)

// Backend is the subset of the REST client the repositories rely on.
type Backend interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string) error
	PostFiles(ctx context.Context, path, field string, files []model.UploadFile, out any) error
}
