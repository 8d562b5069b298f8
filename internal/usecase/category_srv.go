package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/response"

	"go.uber.org/zap"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	GetAllCategories(ctx context.Context) ([]*response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id int64) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	existing, err := s.categoryRepo.FindByName(ctx, req.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryNameExists
	}

	now := time.Now()
	category := &entity.Category{
		CategoryName: req.CategoryName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.Int64("id_category", category.IDCategory),
		zap.String("category_name", category.CategoryName),
	)

	return response.CategoryToResponse(category), nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]*response.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	responses := make([]*response.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = response.CategoryToResponse(category)
	}

	return responses, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return response.CategoryToResponse(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	other, err := s.categoryRepo.FindByName(ctx, req.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if other != nil && other.IDCategory != id {
		return nil, ErrCategoryNameExists
	}

	category.CategoryName = req.CategoryName
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.Info("Category updated", zap.Int64("id_category", id))

	return response.CategoryToResponse(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.Int64("id_category", id))
	return nil
}
