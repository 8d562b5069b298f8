package usecase

import "errors"

// Sentinel errors returned by the services. Their texts are part of the
// published API surface, so they read as client-facing messages rather than
// Go-style lowercase errors. The adaptor layer maps them to HTTP status codes
// with errors.Is; anything not listed here surfaces as a generic 500.
var (
	// 401
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// 403
	ErrForbidden = errors.New("Forbidden")

	// 404
	ErrUserNotFound                       = errors.New("User not found")
	ErrCategoryNotFound                   = errors.New("Category not found")
	ErrProductNotFound                    = errors.New("Product not found")
	ErrPaymentMethodNotFound              = errors.New("Payment method not found")
	ErrTransactionNotFound                = errors.New("Transaction not found")
	ErrDetailTransactionNotFound          = errors.New("Detail transaction not found")
	ErrNoDetailTransactions               = errors.New("No detail transactions found")
	ErrNoDetailTransactionsForTransaction = errors.New("No detail transactions found for this transaction")

	// 400 — conflicts
	ErrUsernameExists          = errors.New("Username already exists")
	ErrEmailExists             = errors.New("Email already exists")
	ErrCategoryNameExists      = errors.New("Category name already exists")
	ErrProductNameExists       = errors.New("Product name already exists")
	ErrPaymentMethodNameExists = errors.New("Payment method name already exists")

	// 400 — invalid state: line items are only mutable while the parent
	// transaction is pending
	ErrDetailUpdateNotPending = errors.New("Cannot update detail transaction when transaction status is not pending")
	ErrDetailDeleteNotPending = errors.New("Cannot delete detail transaction when transaction status is not pending")

	// 400 — input rejected by a business rule rather than struct validation
	ErrInvalidTotalPrice = errors.New("Total price must be a positive number")
	ErrInvalidQuantity   = errors.New("Quantity must be a positive integer")
	ErrInvalidPrice      = errors.New("Price must be a positive number")
)
