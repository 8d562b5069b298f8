package entity

import "time"

type PaymentMethod struct {
	IDPayment     int64     `db:"id_payment"`
	PaymentMethod string    `db:"payment_method"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
