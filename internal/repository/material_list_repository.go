package repository

import (
	"context"
	"fmt"

	"sharehub/internal/model"
)

// MaterialListRepository defines material list operations.
type MaterialListRepository interface {
	List(ctx context.Context) ([]model.MaterialList, error)
	FindByID(ctx context.Context, id int64) (*model.MaterialList, error)
	Create(ctx context.Context, in model.MaterialListInput) error
	Update(ctx context.Context, id int64, in model.MaterialListInput) error
	Delete(ctx context.Context, id int64) error
}

type materialListRepository struct {
	backend Backend
}

// NewMaterialListRepository builds a REST-backed repository.
func NewMaterialListRepository(backend Backend) MaterialListRepository {
	return &materialListRepository{backend: backend}
}

func (r *materialListRepository) List(ctx context.Context) ([]model.MaterialList, error) {
	var lists []model.MaterialList
	if err := r.backend.Get(ctx, "/material-lists", &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *materialListRepository) FindByID(ctx context.Context, id int64) (*model.MaterialList, error) {
	var list model.MaterialList
	if err := r.backend.Get(ctx, fmt.Sprintf("/material-lists/%d", id), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *materialListRepository) Create(ctx context.Context, in model.MaterialListInput) error {
	return r.backend.Post(ctx, "/material-lists", in, nil)
}

func (r *materialListRepository) Update(ctx context.Context, id int64, in model.MaterialListInput) error {
	return r.backend.Put(ctx, fmt.Sprintf("/material-lists/%d", id), in, nil)
}

func (r *materialListRepository) Delete(ctx context.Context, id int64) error {
	return r.backend.Delete(ctx, fmt.Sprintf("/material-lists/%d", id))
}
