// Package prompt turns raw user text into typed values or a rejection
// reason suitable for showing next to the prompt.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/period"

	"github.com/shopspring/decimal"
)

// Sentinels that end the fixed expense list.
var sentinels = []string{"done", "fin"}

// ErrRejected wraps every parse failure.
var ErrRejected = errors.New("invalid input")

// Parser converts raw input into a T or explains why it cannot.
type Parser[T any] func(raw string) (T, error)

// Validate adapts p to a validation callback that only reports the reason.
func Validate[T any](p Parser[T]) func(string) error {
	return func(raw string) error {
		_, err := p(raw)
		return err
	}
}

// WithDefault returns def for blank input and defers to p otherwise.
func WithDefault[T any](p Parser[T], def T) Parser[T] {
	return func(raw string) (T, error) {
		if strings.TrimSpace(raw) == "" {
			return def, nil
		}
		return p(raw)
	}
}

func reject(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRejected, fmt.Sprintf(format, args...))
}

// ParseCurrency accepts CRC, USD or EUR in any case.
func ParseCurrency(raw string) (currency.Code, error) {
	c, err := currency.Parse(raw)
	if err != nil {
		return "", reject("currency must be CRC, USD or EUR")
	}
	return c, nil
}

// ParseAmount accepts any decimal number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, reject("enter a number")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, reject("%q is not a number", s)
	}
	return d, nil
}

// ParsePositiveAmount accepts numbers greater than zero.
func ParsePositiveAmount(raw string) (decimal.Decimal, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		return d, err
	}
	if !d.IsPositive() {
		return decimal.Zero, reject("amount must be greater than zero")
	}
	return d, nil
}

// ParseNonNegativeAmount accepts zero and positive numbers.
func ParseNonNegativeAmount(raw string) (decimal.Decimal, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		return d, err
	}
	if d.IsNegative() {
		return decimal.Zero, reject("amount cannot be negative")
	}
	return d, nil
}

// ParseDate accepts YYYY-MM-DD.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(period.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, reject("use the YYYY-MM-DD format")
	}
	return t, nil
}

// IntRange accepts whole numbers in [lo, hi].
func IntRange(lo, hi int) Parser[int] {
	return func(raw string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < lo || n > hi {
			return 0, reject("enter a number between %d and %d", lo, hi)
		}
		return n, nil
	}
}

// ParseDaysPerWeek accepts 1 through 7.
var ParseDaysPerWeek = IntRange(1, 7)

// ParseYesNo accepts y/yes/s/si/sí and n/no.
func ParseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, reject("answer y or n")
}

// ParseName accepts any non-blank label.
func ParseName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", reject("name cannot be empty")
	}
	return s, nil
}

// IsSentinel reports whether raw ends the fixed expense list.
func IsSentinel(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, sentinel := range sentinels {
		if s == sentinel {
			return true
		}
	}
	return false
}

// Sentinel is the token shown to users to end a list.
func Sentinel() string { return sentinels[0] }
