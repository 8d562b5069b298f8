package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDetailService(repo *repository.Repository) DetailTransactionService {
	transaction := NewTransactionService(repo, zap.NewNop())
	return NewDetailTransactionService(repo, transaction, zap.NewNop())
}

func seedProduct(t *testing.T, repo *repository.Repository, name string) int64 {
	t.Helper()
	category := &entity.Category{CategoryName: "drinks-" + name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Category.Create(context.Background(), category))

	product := &entity.Product{
		ProductName: name,
		Price:       decimal.NewFromInt(25),
		Stock:       10,
		IDCategory:  category.IDCategory,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Product.Create(context.Background(), product))
	return product.IDProduct
}

func seedDetail(t *testing.T, repo *repository.Repository, transactionID, productID int64) int64 {
	t.Helper()
	detail := &entity.DetailTransaction{
		IDTransaction: transactionID,
		IDProduct:     productID,
		Quantity:      2,
	}
	require.NoError(t, repo.DetailTransaction.Create(context.Background(), detail))
	return detail.IDDetailTransaction
}

func TestCreateDetailChecksTransactionBeforeProduct(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)

	// Both references are dangling; the transaction 404 wins.
	_, err := service.CreateDetailTransaction(context.Background(), &request.CreateDetailTransactionRequest{
		IDTransaction: 999,
		IDProduct:     999,
		Quantity:      1,
	})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestCreateDetailRejectsUnknownProduct(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusPending)

	_, err := service.CreateDetailTransaction(context.Background(), &request.CreateDetailTransactionRequest{
		IDTransaction: transactionID,
		IDProduct:     999,
		Quantity:      1,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateDetailRejectsNonPositiveQuantity(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)

	_, err := service.CreateDetailTransaction(context.Background(), &request.CreateDetailTransactionRequest{
		IDTransaction: 1,
		IDProduct:     1,
		Quantity:      0,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCreateDetailAllowedOnNonPendingTransaction(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusCompleted)
	productID := seedProduct(t, repo, "kopi")

	// Only update and delete are gated on the parent being pending.
	res, err := service.CreateDetailTransaction(context.Background(), &request.CreateDetailTransactionRequest{
		IDTransaction: transactionID,
		IDProduct:     productID,
		Quantity:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Quantity)
}

func TestGetAllDetailsEmptyIsNotFound(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)

	_, err := service.GetAllDetailTransactions(context.Background())
	assert.ErrorIs(t, err, ErrNoDetailTransactions)
}

func TestGetDetailsByTransactionEmptyIsNotFound(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusPending)

	_, err := service.GetDetailTransactionsByTransactionID(context.Background(), transactionID)
	assert.ErrorIs(t, err, ErrNoDetailTransactionsForTransaction)
}

func TestGetDetailsByTransactionID(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusPending)
	otherID := seedTransaction(t, repo, entity.TransactionStatusPending)
	productID := seedProduct(t, repo, "teh")

	seedDetail(t, repo, transactionID, productID)
	seedDetail(t, repo, transactionID, productID)
	seedDetail(t, repo, otherID, productID)

	details, err := service.GetDetailTransactionsByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	assert.Len(t, details, 2)
}

func TestUpdateDetailOnPendingTransaction(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusPending)
	productID := seedProduct(t, repo, "kopi")
	detailID := seedDetail(t, repo, transactionID, productID)

	res, err := service.UpdateDetailTransaction(context.Background(), detailID, &request.UpdateDetailTransactionRequest{
		Quantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Quantity)
}

func TestUpdateDetailRejectedOnCompletedTransaction(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusCompleted)
	productID := seedProduct(t, repo, "kopi")
	detailID := seedDetail(t, repo, transactionID, productID)

	_, err := service.UpdateDetailTransaction(context.Background(), detailID, &request.UpdateDetailTransactionRequest{
		Quantity: 7,
	})
	assert.ErrorIs(t, err, ErrDetailUpdateNotPending)
}

func TestDeleteDetailRejectedOnCancelledTransaction(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusCancelled)
	productID := seedProduct(t, repo, "kopi")
	detailID := seedDetail(t, repo, transactionID, productID)

	err := service.DeleteDetailTransaction(context.Background(), detailID)
	assert.ErrorIs(t, err, ErrDetailDeleteNotPending)
}

func TestDeleteDetailOnPendingTransaction(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)
	transactionID := seedTransaction(t, repo, entity.TransactionStatusPending)
	productID := seedProduct(t, repo, "kopi")
	detailID := seedDetail(t, repo, transactionID, productID)

	require.NoError(t, service.DeleteDetailTransaction(context.Background(), detailID))

	_, err := service.GetDetailTransactionByID(context.Background(), detailID)
	assert.ErrorIs(t, err, ErrDetailTransactionNotFound)
}

func TestUpdateDetailNotFound(t *testing.T) {
	repo := newTestRepository()
	service := newTestDetailService(repo)

	_, err := service.UpdateDetailTransaction(context.Background(), 999, &request.UpdateDetailTransactionRequest{
		Quantity: 1,
	})
	assert.ErrorIs(t, err, ErrDetailTransactionNotFound)
}
