package response

import "github.com/RajaPrasetya/pos-server-api/internal/data/entity"

type CategoryResponse struct {
	IDCategory   int64  `json:"id_category"`
	CategoryName string `json:"category_name"`
}

func CategoryToResponse(category *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		IDCategory:   category.IDCategory,
		CategoryName: category.CategoryName,
	}
}
