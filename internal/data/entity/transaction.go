package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}

// IsMutable reports whether the transaction's line items may still be
// changed. Only pending transactions accept line item mutations.
func (s TransactionStatus) IsMutable() bool {
	return s == TransactionStatusPending
}

type Transaction struct {
	IDTransaction int64             `db:"id_transaction"`
	TotalPrice    decimal.Decimal   `db:"total_price"`
	PaymentMethod int64             `db:"payment_method"`
	Status        TransactionStatus `db:"status"`
	IDUser        int64             `db:"id_user"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`

	// PaymentMethodName is populated by queries that join payment_methods.
	PaymentMethodName *string `db:"payment_method_name"`
}
