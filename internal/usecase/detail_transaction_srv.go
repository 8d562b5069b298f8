package usecase

import (
	"context"
	"fmt"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/response"

	"go.uber.org/zap"
)

type DetailTransactionService interface {
	CreateDetailTransaction(ctx context.Context, req *request.CreateDetailTransactionRequest) (*response.DetailTransactionResponse, error)
	GetAllDetailTransactions(ctx context.Context) ([]*response.DetailTransactionResponse, error)
	GetDetailTransactionByID(ctx context.Context, id int64) (*response.DetailTransactionResponse, error)
	GetDetailTransactionsByTransactionID(ctx context.Context, transactionID int64) ([]*response.DetailTransactionResponse, error)
	UpdateDetailTransaction(ctx context.Context, id int64, req *request.UpdateDetailTransactionRequest) (*response.DetailTransactionResponse, error)
	DeleteDetailTransaction(ctx context.Context, id int64) error
}

type detailTransactionService struct {
	repo        *repository.Repository
	transaction TransactionService
	log         *zap.Logger
}

// NewDetailTransactionService wires the line item manager. Lifecycle
// permission is delegated to the transaction service's IsMutable guard
// rather than re-reading status here.
func NewDetailTransactionService(repo *repository.Repository, transaction TransactionService, log *zap.Logger) DetailTransactionService {
	return &detailTransactionService{
		repo:        repo,
		transaction: transaction,
		log:         log.With(zap.String("service", "detail_transaction")),
	}
}

// CreateDetailTransaction checks the parent transaction before the product;
// clients depend on that order of 404s. Create is deliberately not gated on
// the parent being pending — only update and delete are.
func (s *detailTransactionService) CreateDetailTransaction(ctx context.Context, req *request.CreateDetailTransactionRequest) (*response.DetailTransactionResponse, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	transaction, err := s.repo.Transaction.FindByID(ctx, req.IDTransaction)
	if err != nil {
		return nil, fmt.Errorf("check transaction: %w", err)
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	product, err := s.repo.Product.FindByID(ctx, req.IDProduct)
	if err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	detail := &entity.DetailTransaction{
		IDTransaction: req.IDTransaction,
		IDProduct:     req.IDProduct,
		Quantity:      req.Quantity,
	}

	if err := s.repo.DetailTransaction.Create(ctx, detail); err != nil {
		return nil, fmt.Errorf("create detail transaction: %w", err)
	}

	s.log.Info("Detail transaction created",
		zap.Int64("id_detail_transaction", detail.IDDetailTransaction),
		zap.Int64("id_transaction", detail.IDTransaction),
		zap.Int64("id_product", detail.IDProduct),
		zap.Int("quantity", detail.Quantity),
	)

	return response.DetailTransactionToResponse(detail), nil
}

// GetAllDetailTransactions treats an empty table as not found. Unusual, but
// clients rely on the 404.
func (s *detailTransactionService) GetAllDetailTransactions(ctx context.Context) ([]*response.DetailTransactionResponse, error) {
	details, err := s.repo.DetailTransaction.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get detail transactions: %w", err)
	}
	if len(details) == 0 {
		return nil, ErrNoDetailTransactions
	}

	return toDetailResponses(details), nil
}

func (s *detailTransactionService) GetDetailTransactionByID(ctx context.Context, id int64) (*response.DetailTransactionResponse, error) {
	detail, err := s.repo.DetailTransaction.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find detail transaction: %w", err)
	}
	if detail == nil {
		return nil, ErrDetailTransactionNotFound
	}

	return response.DetailTransactionToResponse(detail), nil
}

// GetDetailTransactionsByTransactionID keeps the same empty-means-404 policy
// as the list-all query.
func (s *detailTransactionService) GetDetailTransactionsByTransactionID(ctx context.Context, transactionID int64) ([]*response.DetailTransactionResponse, error) {
	details, err := s.repo.DetailTransaction.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get detail transactions by transaction: %w", err)
	}
	if len(details) == 0 {
		return nil, ErrNoDetailTransactionsForTransaction
	}

	return toDetailResponses(details), nil
}

func (s *detailTransactionService) UpdateDetailTransaction(ctx context.Context, id int64, req *request.UpdateDetailTransactionRequest) (*response.DetailTransactionResponse, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	detail, err := s.repo.DetailTransaction.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find detail transaction: %w", err)
	}
	if detail == nil {
		return nil, ErrDetailTransactionNotFound
	}

	mutable, err := s.transaction.IsMutable(ctx, detail.IDTransaction)
	if err != nil {
		// Unreachable while the foreign key holds, but the guard owns that
		// answer.
		return nil, err
	}
	if !mutable {
		s.log.Warn("Rejected update of detail on non-pending transaction",
			zap.Int64("id_detail_transaction", id),
			zap.Int64("id_transaction", detail.IDTransaction),
		)
		return nil, ErrDetailUpdateNotPending
	}

	detail.Quantity = req.Quantity

	if err := s.repo.DetailTransaction.Update(ctx, detail); err != nil {
		return nil, fmt.Errorf("update detail transaction: %w", err)
	}

	s.log.Info("Detail transaction updated",
		zap.Int64("id_detail_transaction", id),
		zap.Int("quantity", detail.Quantity),
	)

	return response.DetailTransactionToResponse(detail), nil
}

func (s *detailTransactionService) DeleteDetailTransaction(ctx context.Context, id int64) error {
	detail, err := s.repo.DetailTransaction.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find detail transaction: %w", err)
	}
	if detail == nil {
		return ErrDetailTransactionNotFound
	}

	mutable, err := s.transaction.IsMutable(ctx, detail.IDTransaction)
	if err != nil {
		return err
	}
	if !mutable {
		s.log.Warn("Rejected delete of detail on non-pending transaction",
			zap.Int64("id_detail_transaction", id),
			zap.Int64("id_transaction", detail.IDTransaction),
		)
		return ErrDetailDeleteNotPending
	}

	if err := s.repo.DetailTransaction.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete detail transaction: %w", err)
	}

	s.log.Info("Detail transaction deleted", zap.Int64("id_detail_transaction", id))
	return nil
}

func toDetailResponses(details []*entity.DetailTransaction) []*response.DetailTransactionResponse {
	responses := make([]*response.DetailTransactionResponse, len(details))
	for i, detail := range details {
		responses[i] = response.DetailTransactionToResponse(detail)
	}
	return responses
}
