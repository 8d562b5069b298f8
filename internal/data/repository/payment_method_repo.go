package repository

import (
	"context"
	"fmt"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, paymentMethod *entity.PaymentMethod) error
	FindByID(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	FindByName(ctx context.Context, name string) (*entity.PaymentMethod, error)
	FindAll(ctx context.Context) ([]*entity.PaymentMethod, error)
	Update(ctx context.Context, paymentMethod *entity.PaymentMethod) error
	Delete(ctx context.Context, id int64) error
}

type paymentMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func (pr *paymentMethodRepository) Create(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (payment_method, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id_payment
	`

	err := pr.db.QueryRow(ctx, query,
		paymentMethod.PaymentMethod,
		paymentMethod.CreatedAt,
		paymentMethod.UpdatedAt,
	).Scan(&paymentMethod.IDPayment)

	if err != nil {
		pr.log.Error("Failed to create payment method",
			zap.Error(err),
			zap.String("payment_method", paymentMethod.PaymentMethod),
		)
		return fmt.Errorf("create payment method %s: %w", paymentMethod.PaymentMethod, err)
	}

	return nil
}

func (pr *paymentMethodRepository) FindByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	query := `
		SELECT id_payment, payment_method, created_at, updated_at
		FROM payment_methods
		WHERE id_payment = $1
	`

	var paymentMethod entity.PaymentMethod
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&paymentMethod.IDPayment,
		&paymentMethod.PaymentMethod,
		&paymentMethod.CreatedAt,
		&paymentMethod.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find payment method by ID",
			zap.Error(err),
			zap.Int64("id_payment", id),
		)
		return nil, fmt.Errorf("find payment method by id %d: %w", id, err)
	}

	return &paymentMethod, nil
}

func (pr *paymentMethodRepository) FindByName(ctx context.Context, name string) (*entity.PaymentMethod, error) {
	query := `
		SELECT id_payment, payment_method, created_at, updated_at
		FROM payment_methods
		WHERE payment_method = $1
	`

	var paymentMethod entity.PaymentMethod
	err := pr.db.QueryRow(ctx, query, name).Scan(
		&paymentMethod.IDPayment,
		&paymentMethod.PaymentMethod,
		&paymentMethod.CreatedAt,
		&paymentMethod.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find payment method by name",
			zap.Error(err),
			zap.String("payment_method", name),
		)
		return nil, fmt.Errorf("find payment method by name %s: %w", name, err)
	}

	return &paymentMethod, nil
}

func (pr *paymentMethodRepository) FindAll(ctx context.Context) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id_payment, payment_method, created_at, updated_at
		FROM payment_methods
		ORDER BY id_payment
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to get all payment methods", zap.Error(err))
		return nil, fmt.Errorf("find all payment methods: %w", err)
	}
	defer rows.Close()

	var paymentMethods []*entity.PaymentMethod
	for rows.Next() {
		var paymentMethod entity.PaymentMethod
		err := rows.Scan(
			&paymentMethod.IDPayment,
			&paymentMethod.PaymentMethod,
			&paymentMethod.CreatedAt,
			&paymentMethod.UpdatedAt,
		)
		if err != nil {
			pr.log.Error("Failed to scan payment method row", zap.Error(err))
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		paymentMethods = append(paymentMethods, &paymentMethod)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment methods rows: %w", err)
	}

	return paymentMethods, nil
}

func (pr *paymentMethodRepository) Update(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	query := `
		UPDATE payment_methods
		SET payment_method = $2, updated_at = $3
		WHERE id_payment = $1
	`

	result, err := pr.db.Exec(ctx, query,
		paymentMethod.IDPayment,
		paymentMethod.PaymentMethod,
		paymentMethod.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update payment method",
			zap.Error(err),
			zap.Int64("id_payment", paymentMethod.IDPayment),
		)
		return fmt.Errorf("update payment method %d: %w", paymentMethod.IDPayment, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment method %d not found", paymentMethod.IDPayment)
	}

	return nil
}

func (pr *paymentMethodRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM payment_methods WHERE id_payment = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete payment method",
			zap.Error(err),
			zap.Int64("id_payment", id),
		)
		return fmt.Errorf("delete payment method %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment method %d not found", id)
	}

	return nil
}
