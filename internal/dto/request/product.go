package request

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	ProductName string          `json:"product_name" validate:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Description *string         `json:"description"`
	IDCategory  int64           `json:"id_category" validate:"required,gt=0"`
	ImageURL    *string         `json:"image_url"`
}

type UpdateProductRequest struct {
	ProductName *string          `json:"product_name" validate:"omitempty,min=1,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Description *string          `json:"description"`
	IDCategory  *int64           `json:"id_category" validate:"omitempty,gt=0"`
	ImageURL    *string          `json:"image_url"`
}
