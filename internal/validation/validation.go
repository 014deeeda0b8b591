// Package validation holds the pure per-submission validators. Each one
// takes a bound request body and returns the field -> message error map the
// API serializes on 400 responses. Validators never touch the store.
package validation

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Result reports validation outcome. IsValid is true iff Errors is empty.
type Result struct {
	Errors  map[string]string
	IsValid bool
}

func result(errs map[string]string) Result {
	return Result{Errors: errs, IsValid: len(errs) == 0}
}

var rules = validator.New()

func isEmail(s string) bool {
	return rules.Var(s, "email") == nil
}

func isURL(s string) bool {
	return rules.Var(s, "url") == nil
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
