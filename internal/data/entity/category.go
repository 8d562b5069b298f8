package entity

import "time"

type Category struct {
	IDCategory   int64     `db:"id_category"`
	CategoryName string    `db:"category_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
