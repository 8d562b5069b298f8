package response

import (
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
)

type PaymentMethodResponse struct {
	IDPayment     int64     `json:"id_payment"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func PaymentMethodToResponse(paymentMethod *entity.PaymentMethod) *PaymentMethodResponse {
	return &PaymentMethodResponse{
		IDPayment:     paymentMethod.IDPayment,
		PaymentMethod: paymentMethod.PaymentMethod,
		CreatedAt:     paymentMethod.CreatedAt,
		UpdatedAt:     paymentMethod.UpdatedAt,
	}
}
