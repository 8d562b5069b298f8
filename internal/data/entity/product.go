package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	IDProduct   int64           `db:"id_product"`
	ProductName string          `db:"product_name"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Description *string         `db:"description"`
	IDCategory  int64           `db:"id_category"`
	ImageURL    *string         `db:"image_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	// CategoryName is populated by queries that join categories.
	CategoryName *string `db:"category_name"`
}
