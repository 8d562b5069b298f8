package usecase

import (
	"context"
	"testing"

	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	repo := newTestRepository()
	service := NewCategoryService(repo.Category, zap.NewNop())

	_, err := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{CategoryName: "Drinks"})
	require.NoError(t, err)

	_, err = service.CreateCategory(context.Background(), &request.CreateCategoryRequest{CategoryName: "Drinks"})
	assert.ErrorIs(t, err, ErrCategoryNameExists)
}

func TestUpdateCategoryKeepsOwnName(t *testing.T) {
	repo := newTestRepository()
	service := NewCategoryService(repo.Category, zap.NewNop())

	created, err := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{CategoryName: "Drinks"})
	require.NoError(t, err)

	// Re-submitting the unchanged name is not a conflict.
	updated, err := service.UpdateCategory(context.Background(), created.IDCategory, &request.CreateCategoryRequest{CategoryName: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", updated.CategoryName)
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewCategoryService(repo.Category, zap.NewNop())

	_, err := service.GetCategoryByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewCategoryService(repo.Category, zap.NewNop())

	err := service.DeleteCategory(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	repo := newTestRepository()
	service := NewProductService(repo, zap.NewNop())

	_, err := service.CreateProduct(context.Background(), &request.CreateProductRequest{
		ProductName: "Kopi Susu",
		Price:       decimal.NewFromInt(25),
		Stock:       10,
		IDCategory:  999,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	repo := newTestRepository()
	service := NewProductService(repo, zap.NewNop())

	_, err := service.CreateProduct(context.Background(), &request.CreateProductRequest{
		ProductName: "Kopi Susu",
		Price:       decimal.Zero,
		Stock:       10,
		IDCategory:  1,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	repo := newTestRepository()
	categoryService := NewCategoryService(repo.Category, zap.NewNop())
	service := NewProductService(repo, zap.NewNop())

	category, err := categoryService.CreateCategory(context.Background(), &request.CreateCategoryRequest{CategoryName: "Drinks"})
	require.NoError(t, err)

	_, err = service.CreateProduct(context.Background(), &request.CreateProductRequest{
		ProductName: "Kopi Susu",
		Price:       decimal.NewFromInt(25),
		Stock:       10,
		IDCategory:  category.IDCategory,
	})
	require.NoError(t, err)

	_, err = service.CreateProduct(context.Background(), &request.CreateProductRequest{
		ProductName: "Kopi Susu",
		Price:       decimal.NewFromInt(30),
		Stock:       5,
		IDCategory:  category.IDCategory,
	})
	assert.ErrorIs(t, err, ErrProductNameExists)
}

func TestUpdateProductMovesToExistingCategoryOnly(t *testing.T) {
	repo := newTestRepository()
	categoryService := NewCategoryService(repo.Category, zap.NewNop())
	service := NewProductService(repo, zap.NewNop())

	category, err := categoryService.CreateCategory(context.Background(), &request.CreateCategoryRequest{CategoryName: "Drinks"})
	require.NoError(t, err)

	created, err := service.CreateProduct(context.Background(), &request.CreateProductRequest{
		ProductName: "Kopi Susu",
		Price:       decimal.NewFromInt(25),
		Stock:       10,
		IDCategory:  category.IDCategory,
	})
	require.NoError(t, err)

	missing := int64(999)
	_, err = service.UpdateProduct(context.Background(), created.IDProduct, &request.UpdateProductRequest{
		IDCategory: &missing,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreatePaymentMethodRejectsDuplicateName(t *testing.T) {
	repo := newTestRepository()
	service := NewPaymentMethodService(repo.PaymentMethod, zap.NewNop())

	_, err := service.CreatePaymentMethod(context.Background(), &request.CreatePaymentMethodRequest{PaymentMethod: "Cash"})
	require.NoError(t, err)

	_, err = service.CreatePaymentMethod(context.Background(), &request.CreatePaymentMethodRequest{PaymentMethod: "Cash"})
	assert.ErrorIs(t, err, ErrPaymentMethodNameExists)
}

func TestGetPaymentMethodByIDNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewPaymentMethodService(repo.PaymentMethod, zap.NewNop())

	_, err := service.GetPaymentMethodByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
}
