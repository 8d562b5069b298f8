package entity

type DetailTransaction struct {
	IDDetailTransaction int64 `db:"id_detail_transaction"`
	IDTransaction       int64 `db:"id_transaction"`
	IDProduct           int64 `db:"id_product"`
	Quantity            int   `db:"quantity"`
}
