package request

type CreatePaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,min=1,max=100"`
}
