package goal

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrGoalNotFound = errors.New("saving goal not found")
)
