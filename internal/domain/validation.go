package domain

import (
	"github.com/go-playground/validator/v10"
	"strings"
)

// Validation evaluates the per-field rules for a dish. All checks are
// pure verdicts over their input; they never modify anything.
type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	return &Validation{validator: validator.New()}
}

// Name reports whether the name, once trimmed of surrounding whitespace,
// is between 2 and 50 characters long.
func (v *Validation) Name(name string) bool {
	return v.validator.Var(strings.TrimSpace(name), "min=2,max=50") == nil
}

// Price reports whether the price lies strictly between 0 and 1000.
func (v *Validation) Price(price float64) bool {
	return v.validator.Var(price, "gt=0,lt=1000") == nil
}

// Nutrition reports whether the nutrition facts satisfy the tags on the
// Nutrition struct: calories capped at 2000, macros non-negative.
func (v *Validation) Nutrition(n Nutrition) bool {
	return v.validator.Struct(n) == nil
}
