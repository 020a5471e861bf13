package domain

import "errors"

// Domain-level errors
var (
	// ErrDishNotFound is returned by repository lookups that miss and by
	// DishBuilder.Build when a required field was never set.
	ErrDishNotFound = errors.New("dish not found")

	ErrInvalidName      = errors.New("invalid dish name")
	ErrInvalidPrice     = errors.New("invalid dish price")
	ErrInvalidNutrition = errors.New("invalid nutrition facts")
)
