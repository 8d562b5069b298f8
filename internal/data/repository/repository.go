package repository

import (
	"github.com/RajaPrasetya/pos-server-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User              UserRepository
	Category          CategoryRepository
	Product           ProductRepository
	PaymentMethod     PaymentMethodRepository
	Transaction       TransactionRepository
	DetailTransaction DetailTransactionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:              NewUserRepository(db, log),
		Category:          NewCategoryRepository(db, log),
		Product:           NewProductRepository(db, log),
		PaymentMethod:     NewPaymentMethodRepository(db, log),
		Transaction:       NewTransactionRepository(db, log),
		DetailTransaction: NewDetailTransactionRepository(db, log),
	}
}
