package category

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category name already exists")
	ErrCategoryInUse    = errors.New("category in use")
)
