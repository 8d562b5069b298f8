package response

import (
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	IDProduct    int64           `json:"id_product"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Description  *string         `json:"description,omitempty"`
	IDCategory   int64           `json:"id_category"`
	CategoryName *string         `json:"category_name,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ProductToResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		IDProduct:    product.IDProduct,
		ProductName:  product.ProductName,
		Price:        product.Price,
		Stock:        product.Stock,
		Description:  product.Description,
		IDCategory:   product.IDCategory,
		CategoryName: product.CategoryName,
		ImageURL:     product.ImageURL,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
