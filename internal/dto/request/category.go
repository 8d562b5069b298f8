package request

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=1,max=100"`
}
