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

type ProductService interface {
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetAllProducts(ctx context.Context) ([]*response.ProductResponse, error)
	GetProductByID(ctx context.Context, id int64) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	existing, err := s.repo.Product.FindByName(ctx, req.ProductName)
	if err != nil {
		return nil, fmt.Errorf("check product name: %w", err)
	}
	if existing != nil {
		return nil, ErrProductNameExists
	}

	category, err := s.repo.Category.FindByID(ctx, req.IDCategory)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ProductName: req.ProductName,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		IDCategory:  req.IDCategory,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.Int64("id_product", product.IDProduct),
		zap.String("product_name", product.ProductName),
		zap.String("price", product.Price.String()),
	)

	return response.ProductToResponse(product), nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]*response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	responses := make([]*response.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = response.ProductToResponse(product)
	}

	return responses, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return response.ProductToResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.ProductName != nil && *req.ProductName != product.ProductName {
		other, err := s.repo.Product.FindByName(ctx, *req.ProductName)
		if err != nil {
			return nil, fmt.Errorf("check product name: %w", err)
		}
		if other != nil && other.IDProduct != id {
			return nil, ErrProductNameExists
		}
		product.ProductName = *req.ProductName
	}

	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		product.Price = *req.Price
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if req.Description != nil {
		product.Description = req.Description
	}

	if req.IDCategory != nil {
		category, err := s.repo.Category.FindByID(ctx, *req.IDCategory)
		if err != nil {
			return nil, fmt.Errorf("check category: %w", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.IDCategory = *req.IDCategory
	}

	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.Int64("id_product", id))

	return response.ProductToResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted", zap.Int64("id_product", id))
	return nil
}
