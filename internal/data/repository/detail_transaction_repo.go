package repository

import (
	"context"
	"fmt"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DetailTransactionRepository interface {
	Create(ctx context.Context, detail *entity.DetailTransaction) error
	FindByID(ctx context.Context, id int64) (*entity.DetailTransaction, error)
	FindAll(ctx context.Context) ([]*entity.DetailTransaction, error)
	FindByTransactionID(ctx context.Context, transactionID int64) ([]*entity.DetailTransaction, error)
	Update(ctx context.Context, detail *entity.DetailTransaction) error
	Delete(ctx context.Context, id int64) error
}

type detailTransactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDetailTransactionRepository(db database.PgxIface, log *zap.Logger) DetailTransactionRepository {
	return &detailTransactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "detail_transaction")),
	}
}

func (dr *detailTransactionRepository) Create(ctx context.Context, detail *entity.DetailTransaction) error {
	query := `
		INSERT INTO detail_transactions (id_transaction, id_product, quantity)
		VALUES ($1, $2, $3)
		RETURNING id_detail_transaction
	`

	err := dr.db.QueryRow(ctx, query,
		detail.IDTransaction,
		detail.IDProduct,
		detail.Quantity,
	).Scan(&detail.IDDetailTransaction)

	if err != nil {
		dr.log.Error("Failed to create detail transaction",
			zap.Error(err),
			zap.Int64("id_transaction", detail.IDTransaction),
			zap.Int64("id_product", detail.IDProduct),
		)
		return fmt.Errorf("create detail transaction: %w", err)
	}

	return nil
}

func (dr *detailTransactionRepository) FindByID(ctx context.Context, id int64) (*entity.DetailTransaction, error) {
	query := `
		SELECT id_detail_transaction, id_transaction, id_product, quantity
		FROM detail_transactions
		WHERE id_detail_transaction = $1
	`

	var detail entity.DetailTransaction
	err := dr.db.QueryRow(ctx, query, id).Scan(
		&detail.IDDetailTransaction,
		&detail.IDTransaction,
		&detail.IDProduct,
		&detail.Quantity,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		dr.log.Error("Failed to find detail transaction by ID",
			zap.Error(err),
			zap.Int64("id_detail_transaction", id),
		)
		return nil, fmt.Errorf("find detail transaction by id %d: %w", id, err)
	}

	return &detail, nil
}

func (dr *detailTransactionRepository) FindAll(ctx context.Context) ([]*entity.DetailTransaction, error) {
	query := `
		SELECT id_detail_transaction, id_transaction, id_product, quantity
		FROM detail_transactions
		ORDER BY id_detail_transaction
	`

	return dr.queryDetails(ctx, query)
}

func (dr *detailTransactionRepository) FindByTransactionID(ctx context.Context, transactionID int64) ([]*entity.DetailTransaction, error) {
	query := `
		SELECT id_detail_transaction, id_transaction, id_product, quantity
		FROM detail_transactions
		WHERE id_transaction = $1
		ORDER BY id_detail_transaction
	`

	return dr.queryDetails(ctx, query, transactionID)
}

func (dr *detailTransactionRepository) queryDetails(ctx context.Context, query string, args ...any) ([]*entity.DetailTransaction, error) {
	rows, err := dr.db.Query(ctx, query, args...)
	if err != nil {
		dr.log.Error("Failed to query detail transactions", zap.Error(err))
		return nil, fmt.Errorf("query detail transactions: %w", err)
	}
	defer rows.Close()

	var details []*entity.DetailTransaction
	for rows.Next() {
		var detail entity.DetailTransaction
		err := rows.Scan(
			&detail.IDDetailTransaction,
			&detail.IDTransaction,
			&detail.IDProduct,
			&detail.Quantity,
		)
		if err != nil {
			dr.log.Error("Failed to scan detail transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan detail transaction row: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		dr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate detail transactions rows: %w", err)
	}

	return details, nil
}

func (dr *detailTransactionRepository) Update(ctx context.Context, detail *entity.DetailTransaction) error {
	query := `
		UPDATE detail_transactions
		SET quantity = $2
		WHERE id_detail_transaction = $1
	`

	result, err := dr.db.Exec(ctx, query, detail.IDDetailTransaction, detail.Quantity)
	if err != nil {
		dr.log.Error("Failed to update detail transaction",
			zap.Error(err),
			zap.Int64("id_detail_transaction", detail.IDDetailTransaction),
		)
		return fmt.Errorf("update detail transaction %d: %w", detail.IDDetailTransaction, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("detail transaction %d not found", detail.IDDetailTransaction)
	}

	return nil
}

func (dr *detailTransactionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM detail_transactions WHERE id_detail_transaction = $1`

	result, err := dr.db.Exec(ctx, query, id)
	if err != nil {
		dr.log.Error("Failed to delete detail transaction",
			zap.Error(err),
			zap.Int64("id_detail_transaction", id),
		)
		return fmt.Errorf("delete detail transaction %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("detail transaction %d not found", id)
	}

	return nil
}
