package usecase

import (
	"context"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
)

// In-memory repositories for service tests.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.IDUser = f.nextID
	f.users[user.IDUser] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.IDUser] = user
	return nil
}

func (f *fakeUserRepo) SetToken(_ context.Context, id int64, token *string) error {
	if user, ok := f.users[id]; ok {
		user.Token = token
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.nextID++
	category.IDCategory = f.nextID
	f.categories[category.IDCategory] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, category := range f.categories {
		if category.CategoryName == name {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	f.categories[category.IDCategory] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.nextID++
	product.IDProduct = f.nextID
	f.products[product.IDProduct] = product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, product := range f.products {
		if product.ProductName == name {
			return product, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		products = append(products, product)
	}
	return products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.IDProduct] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

type fakePaymentMethodRepo struct {
	paymentMethods map[int64]*entity.PaymentMethod
	nextID         int64
}

func newFakePaymentMethodRepo() *fakePaymentMethodRepo {
	return &fakePaymentMethodRepo{paymentMethods: make(map[int64]*entity.PaymentMethod)}
}

func (f *fakePaymentMethodRepo) Create(_ context.Context, paymentMethod *entity.PaymentMethod) error {
	f.nextID++
	paymentMethod.IDPayment = f.nextID
	f.paymentMethods[paymentMethod.IDPayment] = paymentMethod
	return nil
}

func (f *fakePaymentMethodRepo) FindByID(_ context.Context, id int64) (*entity.PaymentMethod, error) {
	return f.paymentMethods[id], nil
}

func (f *fakePaymentMethodRepo) FindByName(_ context.Context, name string) (*entity.PaymentMethod, error) {
	for _, paymentMethod := range f.paymentMethods {
		if paymentMethod.PaymentMethod == name {
			return paymentMethod, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentMethodRepo) FindAll(_ context.Context) ([]*entity.PaymentMethod, error) {
	paymentMethods := make([]*entity.PaymentMethod, 0, len(f.paymentMethods))
	for _, paymentMethod := range f.paymentMethods {
		paymentMethods = append(paymentMethods, paymentMethod)
	}
	return paymentMethods, nil
}

func (f *fakePaymentMethodRepo) Update(_ context.Context, paymentMethod *entity.PaymentMethod) error {
	f.paymentMethods[paymentMethod.IDPayment] = paymentMethod
	return nil
}

func (f *fakePaymentMethodRepo) Delete(_ context.Context, id int64) error {
	delete(f.paymentMethods, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions map[int64]*entity.Transaction
	nextID       int64
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[int64]*entity.Transaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	f.nextID++
	transaction.IDTransaction = f.nextID
	f.transactions[transaction.IDTransaction] = transaction
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id int64) (*entity.Transaction, error) {
	return f.transactions[id], nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, 0, len(f.transactions))
	for _, transaction := range f.transactions {
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	f.transactions[transaction.IDTransaction] = transaction
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id int64) error {
	delete(f.transactions, id)
	return nil
}

type fakeDetailTransactionRepo struct {
	details map[int64]*entity.DetailTransaction
	nextID  int64
}

func newFakeDetailTransactionRepo() *fakeDetailTransactionRepo {
	return &fakeDetailTransactionRepo{details: make(map[int64]*entity.DetailTransaction)}
}

func (f *fakeDetailTransactionRepo) Create(_ context.Context, detail *entity.DetailTransaction) error {
	f.nextID++
	detail.IDDetailTransaction = f.nextID
	f.details[detail.IDDetailTransaction] = detail
	return nil
}

func (f *fakeDetailTransactionRepo) FindByID(_ context.Context, id int64) (*entity.DetailTransaction, error) {
	return f.details[id], nil
}

func (f *fakeDetailTransactionRepo) FindAll(_ context.Context) ([]*entity.DetailTransaction, error) {
	details := make([]*entity.DetailTransaction, 0, len(f.details))
	for _, detail := range f.details {
		details = append(details, detail)
	}
	return details, nil
}

func (f *fakeDetailTransactionRepo) FindByTransactionID(_ context.Context, transactionID int64) ([]*entity.DetailTransaction, error) {
	var details []*entity.DetailTransaction
	for _, detail := range f.details {
		if detail.IDTransaction == transactionID {
			details = append(details, detail)
		}
	}
	return details, nil
}

func (f *fakeDetailTransactionRepo) Update(_ context.Context, detail *entity.DetailTransaction) error {
	f.details[detail.IDDetailTransaction] = detail
	return nil
}

func (f *fakeDetailTransactionRepo) Delete(_ context.Context, id int64) error {
	delete(f.details, id)
	return nil
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:              newFakeUserRepo(),
		Category:          newFakeCategoryRepo(),
		Product:           newFakeProductRepo(),
		PaymentMethod:     newFakePaymentMethodRepo(),
		Transaction:       newFakeTransactionRepo(),
		DetailTransaction: newFakeDetailTransactionRepo(),
	}
}
