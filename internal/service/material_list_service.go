package service

import (
	"context"
	"fmt"
	"strings"

	"sharehub/internal/model"
	"sharehub/internal/repository"
)

// MaterialListService handles teacher material lists.
type MaterialListService interface {
	List(ctx context.Context) ([]model.MaterialList, error)
	Get(ctx context.Context, id int64) (*model.MaterialList, error)
	Create(ctx context.Context, teacherID int64, in model.MaterialListInput) error
	Update(ctx context.Context, id, teacherID int64, in model.MaterialListInput) error
	Delete(ctx context.Context, id int64) error
}

type materialListService struct {
	repo repository.MaterialListRepository
}

// NewMaterialListService creates a material list service.
func NewMaterialListService(repo repository.MaterialListRepository) MaterialListService {
	return &materialListService{repo: repo}
}

func (s *materialListService) List(ctx context.Context) ([]model.MaterialList, error) {
	lists, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list material lists: %w", err)
	}
	return lists, nil
}

func (s *materialListService) Get(ctx context.Context, id int64) (*model.MaterialList, error) {
	list, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get material list %d: %w", id, err)
	}
	return list, nil
}

func (s *materialListService) Create(ctx context.Context, teacherID int64, in model.MaterialListInput) error {
	if err := s.repo.Create(ctx, prepare(teacherID, in)); err != nil {
		return fmt.Errorf("create material list: %w", err)
	}
	return nil
}

func (s *materialListService) Update(ctx context.Context, id, teacherID int64, in model.MaterialListInput) error {
	if err := s.repo.Update(ctx, id, prepare(teacherID, in)); err != nil {
		return fmt.Errorf("update material list %d: %w", id, err)
	}
	return nil
}

func (s *materialListService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete material list %d: %w", id, err)
	}
	return nil
}

// prepare binds the list to its teacher and trims item text.
func prepare(teacherID int64, in model.MaterialListInput) model.MaterialListInput {
	in.TeacherID = teacherID
	in.Discipline = strings.TrimSpace(in.Discipline)
	items := make([]model.MaterialItem, 0, len(in.Items))
	for _, it := range in.Items {
		it.Name = strings.TrimSpace(it.Name)
		it.Description = strings.TrimSpace(it.Description)
		items = append(items, it)
	}
	in.Items = items
	return in
}
