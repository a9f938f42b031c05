package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sharehub/internal/errors"
	"sharehub/internal/model"
)

var testPictures = []model.UploadFile{
	{Name: "a.png", ContentType: "image/png", Size: 3, Data: []byte{1, 2, 3}},
}

func testProduct() model.Product {
	return model.Product{
		Title:       "Estetoscópio Littmann",
		Description: "Pouco uso",
		Price:       "R$ 1.234,50",
		Category:    "ESTETOSCOPIO",
		Condition:   "USED",
	}
}

func TestPostService_List_AttachesPictures(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List", mock.Anything).Return([]model.Post{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	repo.On("ListPictures", mock.Anything, int64(1)).Return([]model.Picture{{Type: "image/png"}}, nil)
	repo.On("ListPictures", mock.Anything, int64(2)).Return(nil, errors.New("timeout"))
	repo.On("ListPictures", mock.Anything, int64(3)).Return([]model.Picture{{}, {}}, nil)

	svc := NewPostService(repo, new(MockPendingStore))
	posts, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Len(t, posts[0].Pictures, 1)
	assert.Empty(t, posts[1].Pictures, "failed fetch degrades to no pictures")
	assert.Len(t, posts[2].Pictures, 2)
	repo.AssertExpectations(t)
}

func TestPostService_List_Error(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("down"))

	svc := NewPostService(repo, new(MockPendingStore))
	posts, err := svc.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, posts)
	repo.AssertNotCalled(t, "ListPictures", mock.Anything, mock.Anything)
}

func TestPostService_Get(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("FindByID", mock.Anything, int64(7)).Return(&model.Post{ID: 7}, nil)
	repo.On("ListPictures", mock.Anything, int64(7)).Return([]model.Picture{{}, {}}, nil)

	svc := NewPostService(repo, new(MockPendingStore))
	post, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), post.ID)
	assert.Len(t, post.Pictures, 2)
}

func TestPostService_Create(t *testing.T) {
	tests := []struct {
		name     string
		pictures []model.UploadFile
		setup    func(*MockPostRepository, *MockPendingStore)
		wantErr  bool
		errIs    error
		wantPost bool
	}{
		{
			name:     "creates then uploads",
			pictures: testPictures,
			setup: func(r *MockPostRepository, _ *MockPendingStore) {
				r.On("Create", mock.Anything, mock.MatchedBy(func(p model.NewPost) bool {
					return p.UserID == 5 && p.Product.Price == "1.234,50"
				})).Return(&model.Post{ID: 9}, nil)
				r.On("UploadPictures", mock.Anything, int64(9), testPictures).Return(nil)
			},
			wantPost: true,
		},
		{
			name:     "missing id skips upload",
			pictures: testPictures,
			setup: func(r *MockPostRepository, _ *MockPendingStore) {
				r.On("Create", mock.Anything, mock.Anything).Return(&model.Post{}, nil)
			},
			wantErr: true,
			errIs:   apperrors.ErrNoPostID,
		},
		{
			name:     "failed upload parks pictures",
			pictures: testPictures,
			setup: func(r *MockPostRepository, p *MockPendingStore) {
				r.On("Create", mock.Anything, mock.Anything).Return(&model.Post{ID: 9}, nil)
				r.On("UploadPictures", mock.Anything, int64(9), testPictures).Return(errors.New("413"))
				p.On("Save", mock.Anything, int64(9), testPictures).Return(nil)
			},
			wantErr:  true,
			errIs:    apperrors.ErrPicturesNotSaved,
			wantPost: true,
		},
		{
			name:     "failed upload with cache down still keeps the post",
			pictures: testPictures,
			setup: func(r *MockPostRepository, p *MockPendingStore) {
				r.On("Create", mock.Anything, mock.Anything).Return(&model.Post{ID: 9}, nil)
				r.On("UploadPictures", mock.Anything, int64(9), testPictures).Return(errors.New("413"))
				p.On("Save", mock.Anything, int64(9), testPictures).Return(errors.New("connection refused"))
			},
			wantErr:  true,
			errIs:    apperrors.ErrPicturesNotSaved,
			wantPost: true,
		},
		{
			name: "backend rejects create",
			setup: func(r *MockPostRepository, _ *MockPendingStore) {
				r.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("400"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPostRepository)
			pending := new(MockPendingStore)
			tt.setup(repo, pending)
			svc := NewPostService(repo, pending)

			post, err := svc.Create(context.Background(), 5, testProduct(), tt.pictures)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
			}
			if tt.wantPost {
				require.NotNil(t, post)
				assert.Equal(t, int64(9), post.ID)
			} else {
				assert.Nil(t, post)
			}
			repo.AssertExpectations(t)
			pending.AssertExpectations(t)
		})
	}
}

func TestPostService_Create_InvalidPrice(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewPostService(repo, new(MockPendingStore))

	product := testProduct()
	product.Price = "barato"
	_, err := svc.Create(context.Background(), 5, product, nil)

	assert.ErrorIs(t, err, model.ErrInvalidPrice)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostService_Update(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(u model.PostUpdate) bool {
		return u.Product.Price == "1.234,50"
	})).Return(&model.Post{ID: 3}, nil)

	svc := NewPostService(repo, new(MockPendingStore))
	post, err := svc.Update(context.Background(), 3, testProduct())

	require.NoError(t, err)
	assert.Equal(t, int64(3), post.ID)
	repo.AssertExpectations(t)
}

func TestPostService_Delete_DiscardsPending(t *testing.T) {
	repo := new(MockPostRepository)
	pending := new(MockPendingStore)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)
	pending.On("Discard", mock.Anything, int64(3)).Return(nil)

	svc := NewPostService(repo, pending)
	assert.NoError(t, svc.Delete(context.Background(), 3))

	repo.AssertExpectations(t)
	pending.AssertExpectations(t)
}

func TestPostService_Delete_IgnoresDiscardFailure(t *testing.T) {
	repo := new(MockPostRepository)
	pending := new(MockPendingStore)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)
	pending.On("Discard", mock.Anything, int64(3)).Return(errors.New("connection refused"))

	svc := NewPostService(repo, pending)
	assert.NoError(t, svc.Delete(context.Background(), 3))

	pending.AssertExpectations(t)
}

func TestPostService_RetryPictures(t *testing.T) {
	t.Run("nothing parked", func(t *testing.T) {
		pending := new(MockPendingStore)
		pending.On("Load", mock.Anything, int64(4)).Return(nil, nil)

		svc := NewPostService(new(MockPostRepository), pending)
		err := svc.RetryPictures(context.Background(), 4)

		assert.ErrorIs(t, err, apperrors.ErrNoPendingPictures)
	})

	t.Run("re-sends and discards", func(t *testing.T) {
		repo := new(MockPostRepository)
		pending := new(MockPendingStore)
		pending.On("Load", mock.Anything, int64(4)).Return(testPictures, nil)
		repo.On("UploadPictures", mock.Anything, int64(4), testPictures).Return(nil)
		pending.On("Discard", mock.Anything, int64(4)).Return(nil)

		svc := NewPostService(repo, pending)
		assert.NoError(t, svc.RetryPictures(context.Background(), 4))

		repo.AssertExpectations(t)
		pending.AssertExpectations(t)
	})

	t.Run("discard failure after upload is not an error", func(t *testing.T) {
		repo := new(MockPostRepository)
		pending := new(MockPendingStore)
		pending.On("Load", mock.Anything, int64(4)).Return(testPictures, nil)
		repo.On("UploadPictures", mock.Anything, int64(4), testPictures).Return(nil)
		pending.On("Discard", mock.Anything, int64(4)).Return(errors.New("connection refused"))

		svc := NewPostService(repo, pending)
		assert.NoError(t, svc.RetryPictures(context.Background(), 4))
	})

	t.Run("upload fails again keeps pending", func(t *testing.T) {
		repo := new(MockPostRepository)
		pending := new(MockPendingStore)
		pending.On("Load", mock.Anything, int64(4)).Return(testPictures, nil)
		repo.On("UploadPictures", mock.Anything, int64(4), testPictures).Return(errors.New("500"))

		svc := NewPostService(repo, pending)
		err := svc.RetryPictures(context.Background(), 4)

		assert.ErrorIs(t, err, apperrors.ErrPicturesNotSaved)
		pending.AssertNotCalled(t, "Discard", mock.Anything, mock.Anything)
	})
}
