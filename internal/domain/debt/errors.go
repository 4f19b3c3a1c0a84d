package debt

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDebtNotFound   = errors.New("debt not found")
	ErrSameStatus     = errors.New("debt already has that status")
	ErrStatusReverted = errors.New("paid debts cannot return to pending")
	ErrWalletNotFound = errors.New("wallet not found")
)
