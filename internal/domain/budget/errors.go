package budget

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrBudgetNotFound   = errors.New("budget not found")
	ErrCategoryNotFound = errors.New("category not found")
)
