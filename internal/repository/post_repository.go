package repository

import (
	"context"
	"fmt"

	"sharehub/internal/model"
)

// PostRepository defines post and picture operations.
type PostRepository interface {
	List(ctx context.Context) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	Create(ctx context.Context, post model.NewPost) (*model.Post, error)
	Update(ctx context.Context, id int64, update model.PostUpdate) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	ListPictures(ctx context.Context, postID int64) ([]model.Picture, error)
	UploadPictures(ctx context.Context, postID int64, files []model.UploadFile) error
}

type postRepository struct {
	backend Backend
}

// NewPostRepository builds a REST-backed repository.
func NewPostRepository(backend Backend) PostRepository {
	return &postRepository{backend: backend}
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.backend.Get(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	var posts []model.Post
	if err := r.backend.Get(ctx, fmt.Sprintf("/posts/user/%d", userID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.backend.Get(ctx, fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post model.NewPost) (*model.Post, error) {
	var created model.Post
	if err := r.backend.Post(ctx, "/posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *postRepository) Update(ctx context.Context, id int64, update model.PostUpdate) (*model.Post, error) {
	var updated model.Post
	if err := r.backend.Put(ctx, fmt.Sprintf("/posts/%d", id), update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	return r.backend.Delete(ctx, fmt.Sprintf("/posts/%d", id))
}

func (r *postRepository) ListPictures(ctx context.Context, postID int64) ([]model.Picture, error) {
	var pictures []model.Picture
	if err := r.backend.Get(ctx, fmt.Sprintf("/posts/%d/pictures", postID), &pictures); err != nil {
		return nil, err
	}
	return pictures, nil
}

func (r *postRepository) UploadPictures(ctx context.Context, postID int64, files []model.UploadFile) error {
	return r.backend.PostFiles(ctx, fmt.Sprintf("/posts/%d/pictures", postID), "pictures", files, nil)
}
