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

func seedPaymentMethod(t *testing.T, repo *repository.Repository, name string) int64 {
	t.Helper()
	paymentMethod := &entity.PaymentMethod{
		PaymentMethod: name,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, repo.PaymentMethod.Create(context.Background(), paymentMethod))
	return paymentMethod.IDPayment
}

func seedTransaction(t *testing.T, repo *repository.Repository, status entity.TransactionStatus) int64 {
	t.Helper()
	paymentID := seedPaymentMethod(t, repo, "cash-"+string(status))
	transaction := &entity.Transaction{
		TotalPrice:    decimal.NewFromInt(100),
		PaymentMethod: paymentID,
		Status:        status,
		IDUser:        1,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, repo.Transaction.Create(context.Background(), transaction))
	return transaction.IDTransaction
}

func TestCreateTransactionStampsAuthorFromPrincipal(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())
	paymentID := seedPaymentMethod(t, repo, "cash")

	principal := &entity.User{IDUser: 42, Username: "budi", Role: entity.RoleCashier}

	res, err := service.CreateTransaction(context.Background(), principal, &request.CreateTransactionRequest{
		TotalPrice:    decimal.NewFromInt(150),
		PaymentMethod: paymentID,
		Status:        "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.IDUser)
	assert.Equal(t, entity.TransactionStatusPending, res.Status)
}

func TestCreateTransactionRequiresPrincipal(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())
	paymentID := seedPaymentMethod(t, repo, "cash")

	_, err := service.CreateTransaction(context.Background(), nil, &request.CreateTransactionRequest{
		TotalPrice:    decimal.NewFromInt(150),
		PaymentMethod: paymentID,
		Status:        "pending",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateTransactionRejectsNonPositiveTotal(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())
	paymentID := seedPaymentMethod(t, repo, "cash")

	principal := &entity.User{IDUser: 1}

	_, err := service.CreateTransaction(context.Background(), principal, &request.CreateTransactionRequest{
		TotalPrice:    decimal.Zero,
		PaymentMethod: paymentID,
		Status:        "pending",
	})
	assert.ErrorIs(t, err, ErrInvalidTotalPrice)
}

func TestCreateTransactionRejectsUnknownPaymentMethod(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())

	principal := &entity.User{IDUser: 1}

	_, err := service.CreateTransaction(context.Background(), principal, &request.CreateTransactionRequest{
		TotalPrice:    decimal.NewFromInt(150),
		PaymentMethod: 999,
		Status:        "pending",
	})
	assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())

	_, err := service.GetTransactionByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUpdateTransactionAllowsAnyStatusTransition(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())
	id := seedTransaction(t, repo, entity.TransactionStatusCompleted)

	// Reopening a completed transaction is allowed; the status enum is the
	// only restriction.
	status := "pending"
	res, err := service.UpdateTransaction(context.Background(), id, &request.UpdateTransactionRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, res.Status)
}

func TestUpdateTransactionNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())

	status := "completed"
	_, err := service.UpdateTransaction(context.Background(), 999, &request.UpdateTransactionRequest{
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())

	err := service.DeleteTransaction(context.Background(), 999)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestIsMutable(t *testing.T) {
	repo := newTestRepository()
	service := NewTransactionService(repo, zap.NewNop())

	pendingID := seedTransaction(t, repo, entity.TransactionStatusPending)
	completedID := seedTransaction(t, repo, entity.TransactionStatusCompleted)

	mutable, err := service.IsMutable(context.Background(), pendingID)
	require.NoError(t, err)
	assert.True(t, mutable)

	mutable, err = service.IsMutable(context.Background(), completedID)
	require.NoError(t, err)
	assert.False(t, mutable)

	_, err = service.IsMutable(context.Background(), 999)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
