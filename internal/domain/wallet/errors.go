package wallet

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrWalletNotFound = errors.New("wallet not found")
	ErrWalletExists   = errors.New("wallet already exists")
)
