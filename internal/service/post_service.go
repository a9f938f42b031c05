package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"sharehub/internal/errors"
	"sharehub/internal/model"
	"sharehub/internal/repository"
	"sharehub/internal/upload"
)

// pictureFetchLimit bounds concurrent picture requests per page.
const pictureFetchLimit = 8

// PostService handles listing operations.
type PostService interface {
	List(ctx context.Context) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)
	Get(ctx context.Context, id int64) (*model.Post, error)
	Create(ctx context.Context, userID int64, product model.Product, pictures []model.UploadFile) (*model.Post, error)
	Update(ctx context.Context, id int64, product model.Product) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	HasPendingPictures(ctx context.Context, postID int64) bool
	RetryPictures(ctx context.Context, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
	pending  upload.PendingStoreInterface
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, pending upload.PendingStoreInterface) PostService {
	return &postService{
		postRepo: postRepo,
		pending:  pending,
	}
}

// List returns every listing with its pictures.
func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	s.attachPictures(ctx, posts)
	return posts, nil
}

// ListByUser returns the listings owned by userID with their pictures.
func (s *postService) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts of user %d: %w", userID, err)
	}
	s.attachPictures(ctx, posts)
	return posts, nil
}

// Get returns one listing with its pictures.
func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	pictures, err := s.postRepo.ListPictures(ctx, id)
	if err != nil {
		log.Printf("pictures of post %d: %v", id, err)
	}
	post.Pictures = pictures
	return post, nil
}

// attachPictures fetches pictures for every post concurrently. A failed fetch
// leaves that post without pictures.
func (s *postService) attachPictures(ctx context.Context, posts []model.Post) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pictureFetchLimit)
	for i := range posts {
		post := &posts[i]
		g.Go(func() error {
			pictures, err := s.postRepo.ListPictures(gctx, post.ID)
			if err != nil {
				log.Printf("pictures of post %d: %v", post.ID, err)
				return nil
			}
			post.Pictures = pictures
			return nil
		})
	}
	_ = g.Wait()
}

// Create publishes a listing, then uploads its pictures keyed by the new id.
// When the upload fails the post stays created and the pictures are parked for
// RetryPictures; the returned error wraps errors.ErrPicturesNotSaved.
func (s *postService) Create(ctx context.Context, userID int64, product model.Product, pictures []model.UploadFile) (*model.Post, error) {
	price, err := model.NormalizePrice(product.Price)
	if err != nil {
		return nil, err
	}
	product.Price = price

	created, err := s.postRepo.Create(ctx, model.NewPost{Product: product, UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if created.ID == 0 {
		return nil, errors.ErrNoPostID
	}
	if len(pictures) == 0 {
		return created, nil
	}

	if err := s.postRepo.UploadPictures(ctx, created.ID, pictures); err != nil {
		if saveErr := s.pending.Save(ctx, created.ID, pictures); saveErr != nil {
			log.Printf("park pictures of post %d: %v", created.ID, saveErr)
		}
		return created, fmt.Errorf("upload pictures of post %d: %w: %w", created.ID, errors.ErrPicturesNotSaved, err)
	}
	return created, nil
}

// Update replaces the product of an existing listing.
func (s *postService) Update(ctx context.Context, id int64, product model.Product) (*model.Post, error) {
	price, err := model.NormalizePrice(product.Price)
	if err != nil {
		return nil, err
	}
	product.Price = price

	updated, err := s.postRepo.Update(ctx, id, model.PostUpdate{Product: product})
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a listing and anything parked for it.
func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if err := s.pending.Discard(ctx, id); err != nil {
		log.Printf("discard pending pictures of post %d: %v", id, err)
	}
	return nil
}

// HasPendingPictures reports whether postID has pictures waiting to be re-sent.
func (s *postService) HasPendingPictures(ctx context.Context, postID int64) bool {
	return s.pending.Has(ctx, postID)
}

// RetryPictures re-sends parked pictures for postID.
func (s *postService) RetryPictures(ctx context.Context, postID int64) error {
	pictures, err := s.pending.Load(ctx, postID)
	if err != nil {
		return fmt.Errorf("load pending pictures of post %d: %w", postID, err)
	}
	if len(pictures) == 0 {
		return errors.ErrNoPendingPictures
	}
	if err := s.postRepo.UploadPictures(ctx, postID, pictures); err != nil {
		return fmt.Errorf("upload pictures of post %d: %w: %w", postID, errors.ErrPicturesNotSaved, err)
	}
	if err := s.pending.Discard(ctx, postID); err != nil {
		log.Printf("discard pending pictures of post %d: %v", postID, err)
	}
	return nil
}
