package handler

import (
	"errors"

	"fintrack-go/internal/domain/budget"
	"fintrack-go/internal/domain/category"
	"fintrack-go/internal/domain/debt"
	"fintrack-go/internal/domain/goal"
	"fintrack-go/internal/domain/transaction"
	"fintrack-go/internal/domain/user"
	"fintrack-go/internal/domain/wallet"
)

// isValidation reports whether err is a domain validation failure, which maps
// to a 400 response instead of a 500.
func isValidation(err error) bool {
	return errors.Is(err, user.ErrInvalidInput) ||
		errors.Is(err, wallet.ErrInvalidInput) ||
		errors.Is(err, category.ErrInvalidInput) ||
		errors.Is(err, budget.ErrInvalidInput) ||
		errors.Is(err, transaction.ErrInvalidInput) ||
		errors.Is(err, debt.ErrInvalidInput) ||
		errors.Is(err, goal.ErrInvalidInput)
}
