package response

import "github.com/RajaPrasetya/pos-server-api/internal/data/entity"

type DetailTransactionResponse struct {
	IDDetail      int64 `json:"id_detail"`
	IDTransaction int64 `json:"id_transaction"`
	IDProduct     int64 `json:"id_product"`
	Quantity      int   `json:"quantity"`
}

func DetailTransactionToResponse(detail *entity.DetailTransaction) *DetailTransactionResponse {
	return &DetailTransactionResponse{
		IDDetail:      detail.IDDetailTransaction,
		IDTransaction: detail.IDTransaction,
		IDProduct:     detail.IDProduct,
		Quantity:      detail.Quantity,
	}
}

// DetailTransactionListResponse is the list envelope, serialized as
// {"data": {"detail_transactions": [...]}}.
type DetailTransactionListResponse struct {
	DetailTransactions []*DetailTransactionResponse `json:"detail_transactions"`
}
