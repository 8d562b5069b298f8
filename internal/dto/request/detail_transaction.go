package request

type CreateDetailTransactionRequest struct {
	IDTransaction int64 `json:"id_transaction" validate:"required,gt=0"`
	IDProduct     int64 `json:"id_product" validate:"required,gt=0"`
	Quantity      int   `json:"quantity" validate:"required,gt=0"`
}

type UpdateDetailTransactionRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
