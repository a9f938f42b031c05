package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sharehub/internal/model"
)

// MockAuthRepository is a mock implementation of AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Login(ctx context.Context, creds model.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

func (m *MockAuthRepository) Register(ctx context.Context, reg model.Registration) (string, error) {
	args := m.Called(ctx, reg)
	return args.String(0), args.Error(1)
}

func (m *MockAuthRepository) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post model.NewPost) (*model.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id int64, update model.PostUpdate) (*model.Post, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ListPictures(ctx context.Context, postID int64) ([]model.Picture, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Picture), args.Error(1)
}

func (m *MockPostRepository) UploadPictures(ctx context.Context, postID int64, files []model.UploadFile) error {
	args := m.Called(ctx, postID, files)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, update model.UserUpdate) (string, error) {
	args := m.Called(ctx, id, update)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaterialListRepository is a mock implementation of MaterialListRepository.
type MockMaterialListRepository struct {
	mock.Mock
}

func (m *MockMaterialListRepository) List(ctx context.Context) ([]model.MaterialList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaterialList), args.Error(1)
}

func (m *MockMaterialListRepository) FindByID(ctx context.Context, id int64) (*model.MaterialList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaterialList), args.Error(1)
}

func (m *MockMaterialListRepository) Create(ctx context.Context, in model.MaterialListInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockMaterialListRepository) Update(ctx context.Context, id int64, in model.MaterialListInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockMaterialListRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPendingStore is a mock implementation of PendingStoreInterface.
type MockPendingStore struct {
	mock.Mock
}

func (m *MockPendingStore) Save(ctx context.Context, postID int64, files []model.UploadFile) error {
	args := m.Called(ctx, postID, files)
	return args.Error(0)
}

func (m *MockPendingStore) Load(ctx context.Context, postID int64) ([]model.UploadFile, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UploadFile), args.Error(1)
}

func (m *MockPendingStore) Has(ctx context.Context, postID int64) bool {
	args := m.Called(ctx, postID)
	return args.Bool(0)
}

func (m *MockPendingStore) Discard(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}
