package transaction

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBudgetNotFound      = errors.New("budget not found")
)
