package service

import (
	"context"
	"errors"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryService handles category business logic. Categories have no
// owner: any signed-in user may change or remove any of them.
type CategoryService struct {
	repo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

func (s *CategoryService) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	c := &model.Category{Name: in.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update renames a category. A missing id is reported before any input error.
func (s *CategoryService) Update(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := Validate(in); err != nil {
		return nil, err
	}

	c.Name = in.Name
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes the category and detaches it from every post.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
