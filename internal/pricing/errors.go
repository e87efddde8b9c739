// Package pricing implements the bulk-pricing, delivery fee and surge
// calculators. Every function is pure; callers inject time and configuration.
package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// Call-time input errors. They are returned wrapped with the offending value.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidDistance = errors.New("distance must be a finite non-negative number")
	ErrAmountOverflow  = errors.New("amount overflows int64 minor units")
)

// Violation is one broken configuration rule.
type Violation struct {
	// Index is the position of the offending entry, or -1 for list-level rules.
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError enumerates every rule a configuration violates.
type ValidationError struct {
	Subject    string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(msgs, "; "))
}

func (e *ValidationError) add(index int, field, rule, format string, args ...any) {
	e.Violations = append(e.Violations, Violation{
		Index:   index,
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

// errOrNil returns nil when nothing was recorded so callers can return it directly.
func (e *ValidationError) errOrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func checkQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	return nil
}

func checkAmount(name string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %s is %d", ErrNegativeAmount, name, amount)
	}
	return nil
}
