package usecase

import (
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User              UserService
	Category          CategoryService
	Product           ProductService
	PaymentMethod     PaymentMethodService
	Transaction       TransactionService
	DetailTransaction DetailTransactionService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	transaction := NewTransactionService(repo, log)

	return &Service{
		User:              NewUserService(repo.User, config, log),
		Category:          NewCategoryService(repo.Category, log),
		Product:           NewProductService(repo, log),
		PaymentMethod:     NewPaymentMethodService(repo.PaymentMethod, log),
		Transaction:       transaction,
		DetailTransaction: NewDetailTransactionService(repo, transaction, log),
	}
}
