package repository

import (
	"context"
	"fmt"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)
	FindAll(ctx context.Context) ([]*entity.Transaction, error)
	Update(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id int64) error
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (tr *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	query := `
		INSERT INTO transactions (total_price, payment_method, status, id_user, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_transaction
	`

	err := tr.db.QueryRow(ctx, query,
		transaction.TotalPrice,
		transaction.PaymentMethod,
		transaction.Status,
		transaction.IDUser,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	).Scan(&transaction.IDTransaction)

	if err != nil {
		tr.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.Int64("id_user", transaction.IDUser),
		)
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

func (tr *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	query := `
		SELECT t.id_transaction, t.total_price, t.payment_method, t.status,
		       t.id_user, t.created_at, t.updated_at, pm.payment_method
		FROM transactions t
		LEFT JOIN payment_methods pm ON pm.id_payment = t.payment_method
		WHERE t.id_transaction = $1
	`

	var transaction entity.Transaction
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&transaction.IDTransaction,
		&transaction.TotalPrice,
		&transaction.PaymentMethod,
		&transaction.Status,
		&transaction.IDUser,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
		&transaction.PaymentMethodName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find transaction by ID",
			zap.Error(err),
			zap.Int64("id_transaction", id),
		)
		return nil, fmt.Errorf("find transaction by id %d: %w", id, err)
	}

	return &transaction, nil
}

func (tr *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	query := `
		SELECT t.id_transaction, t.total_price, t.payment_method, t.status,
		       t.id_user, t.created_at, t.updated_at, pm.payment_method
		FROM transactions t
		LEFT JOIN payment_methods pm ON pm.id_payment = t.payment_method
		ORDER BY t.id_transaction
	`

	rows, err := tr.db.Query(ctx, query)
	if err != nil {
		tr.log.Error("Failed to get all transactions", zap.Error(err))
		return nil, fmt.Errorf("find all transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entity.Transaction
	for rows.Next() {
		var transaction entity.Transaction
		err := rows.Scan(
			&transaction.IDTransaction,
			&transaction.TotalPrice,
			&transaction.PaymentMethod,
			&transaction.Status,
			&transaction.IDUser,
			&transaction.CreatedAt,
			&transaction.UpdatedAt,
			&transaction.PaymentMethodName,
		)
		if err != nil {
			tr.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, &transaction)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate transactions rows: %w", err)
	}

	return transactions, nil
}

func (tr *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET total_price = $2, payment_method = $3, status = $4, updated_at = $5
		WHERE id_transaction = $1
	`

	result, err := tr.db.Exec(ctx, query,
		transaction.IDTransaction,
		transaction.TotalPrice,
		transaction.PaymentMethod,
		transaction.Status,
		transaction.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to update transaction",
			zap.Error(err),
			zap.Int64("id_transaction", transaction.IDTransaction),
		)
		return fmt.Errorf("update transaction %d: %w", transaction.IDTransaction, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d not found", transaction.IDTransaction)
	}

	return nil
}

func (tr *transactionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE id_transaction = $1`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete transaction",
			zap.Error(err),
			zap.Int64("id_transaction", id),
		)
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d not found", id)
	}

	return nil
}
