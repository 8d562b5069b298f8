package request

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	TotalPrice    decimal.Decimal `json:"total_price" validate:"required"`
	PaymentMethod int64           `json:"payment_method" validate:"required,gt=0"`
	Status        string          `json:"status" validate:"required,oneof=pending completed cancelled"`
}

type UpdateTransactionRequest struct {
	TotalPrice    *decimal.Decimal `json:"total_price"`
	PaymentMethod *int64           `json:"payment_method" validate:"omitempty,gt=0"`
	Status        *string          `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}
