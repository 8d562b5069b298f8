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

type TransactionService interface {
	CreateTransaction(ctx context.Context, user *entity.User, req *request.CreateTransactionRequest) (*response.TransactionResponse, error)
	GetAllTransactions(ctx context.Context) ([]*response.TransactionResponse, error)
	GetTransactionByID(ctx context.Context, id int64) (*response.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, id int64, req *request.UpdateTransactionRequest) (*response.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id int64) error

	// IsMutable is the single authority consulted before any line item
	// mutation: only pending transactions accept changes to their details.
	IsMutable(ctx context.Context, id int64) (bool, error)
}

type transactionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTransactionService(repo *repository.Repository, log *zap.Logger) TransactionService {
	return &transactionService{
		repo: repo,
		log:  log.With(zap.String("service", "transaction")),
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, user *entity.User, req *request.CreateTransactionRequest) (*response.TransactionResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	if !req.TotalPrice.IsPositive() {
		return nil, ErrInvalidTotalPrice
	}

	paymentMethod, err := s.repo.PaymentMethod.FindByID(ctx, req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("check payment method: %w", err)
	}
	if paymentMethod == nil {
		return nil, ErrPaymentMethodNotFound
	}

	// id_user always comes from the session principal, never the body, so
	// authorship cannot be spoofed.
	now := time.Now()
	transaction := &entity.Transaction{
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.TransactionStatus(req.Status),
		IDUser:        user.IDUser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Transaction.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.log.Info("Transaction created",
		zap.Int64("id_transaction", transaction.IDTransaction),
		zap.Int64("id_user", user.IDUser),
		zap.String("status", string(transaction.Status)),
		zap.String("total_price", transaction.TotalPrice.String()),
	)

	return response.TransactionToResponse(transaction), nil
}

func (s *transactionService) GetAllTransactions(ctx context.Context) ([]*response.TransactionResponse, error) {
	transactions, err := s.repo.Transaction.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	responses := make([]*response.TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = response.TransactionToResponse(transaction)
	}

	return responses, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id int64) (*response.TransactionResponse, error) {
	transaction, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	return response.TransactionToResponse(transaction), nil
}

// UpdateTransaction accepts any valid status value, including transitions
// back to pending. Restricting the transition graph would be a behavior
// change for existing clients; see DESIGN.md.
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, req *request.UpdateTransactionRequest) (*response.TransactionResponse, error) {
	transaction, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	if req.TotalPrice != nil {
		if !req.TotalPrice.IsPositive() {
			return nil, ErrInvalidTotalPrice
		}
		transaction.TotalPrice = *req.TotalPrice
	}

	if req.PaymentMethod != nil {
		paymentMethod, err := s.repo.PaymentMethod.FindByID(ctx, *req.PaymentMethod)
		if err != nil {
			return nil, fmt.Errorf("check payment method: %w", err)
		}
		if paymentMethod == nil {
			return nil, ErrPaymentMethodNotFound
		}
		transaction.PaymentMethod = *req.PaymentMethod
	}

	if req.Status != nil {
		transaction.Status = entity.TransactionStatus(*req.Status)
	}

	transaction.UpdatedAt = time.Now()

	if err := s.repo.Transaction.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	s.log.Info("Transaction updated",
		zap.Int64("id_transaction", transaction.IDTransaction),
		zap.String("status", string(transaction.Status)),
	)

	// Join column is stale after a payment method change; refetch keeps the
	// response consistent.
	updated, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil || updated == nil {
		return response.TransactionToResponse(transaction), nil
	}

	return response.TransactionToResponse(updated), nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	transaction, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find transaction: %w", err)
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	if err := s.repo.Transaction.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.log.Info("Transaction deleted", zap.Int64("id_transaction", id))
	return nil
}

func (s *transactionService) IsMutable(ctx context.Context, id int64) (bool, error) {
	transaction, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find transaction: %w", err)
	}
	if transaction == nil {
		return false, ErrTransactionNotFound
	}

	return transaction.Status.IsMutable(), nil
}
