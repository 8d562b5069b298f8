package response

import (
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	IDTransaction     int64                    `json:"id_transaction"`
	TotalPrice        decimal.Decimal          `json:"total_price"`
	PaymentMethod     int64                    `json:"payment_method"`
	PaymentMethodName *string                  `json:"payment_method_name,omitempty"`
	Status            entity.TransactionStatus `json:"status"`
	IDUser            int64                    `json:"id_user"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func TransactionToResponse(transaction *entity.Transaction) *TransactionResponse {
	return &TransactionResponse{
		IDTransaction:     transaction.IDTransaction,
		TotalPrice:        transaction.TotalPrice,
		PaymentMethod:     transaction.PaymentMethod,
		PaymentMethodName: transaction.PaymentMethodName,
		Status:            transaction.Status,
		IDUser:            transaction.IDUser,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	}
}

// TransactionListResponse is the list envelope, serialized as
// {"data": {"transactions": [...]}}.
type TransactionListResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
}
