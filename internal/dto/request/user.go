package request

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager cashier"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager cashier"`
}
