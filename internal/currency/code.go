// Package currency defines the closed set of currencies a plan can be
// entered and displayed in, and money amounts tagged with one of them.
package currency

import (
	"errors"
	"fmt"
	"strings"

	xcurrency "golang.org/x/text/currency"
)

// Code is an ISO 4217 code from the supported set.
type Code string

// Supported currencies.
const (
	CRC Code = "CRC"
	USD Code = "USD"
	EUR Code = "EUR"
)

// ErrUnsupported is returned when a code is malformed or outside the supported set.
var ErrUnsupported = errors.New("currency: unsupported code")

// Info describes a supported currency.
type Info struct {
	Code   Code
	Name   string
	Symbol string
	unit   xcurrency.Unit
}

var supported = []Info{
	{Code: CRC, Name: "Colones", Symbol: "₡", unit: xcurrency.MustParseISO("CRC")},
	{Code: USD, Name: "Dollars", Symbol: "$", unit: xcurrency.USD},
	{Code: EUR, Name: "Euros", Symbol: "€", unit: xcurrency.EUR},
}

// All returns the supported currencies in display order.
func All() []Info {
	out := make([]Info, len(supported))
	copy(out, supported)
	return out
}

// Parse resolves a user-entered code, case-insensitively.
func Parse(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	unit, err := xcurrency.ParseISO(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	for _, info := range supported {
		if info.unit == unit {
			return info.Code, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use CRC, USD or EUR)", ErrUnsupported, s)
}

// Valid reports whether c is in the supported set.
func (c Code) Valid() bool {
	_, ok := c.lookup()
	return ok
}

// Info returns the metadata for c. Unknown codes get the code as both name
// and symbol so they still render.
func (c Code) Info() Info {
	if info, ok := c.lookup(); ok {
		return info
	}
	return Info{Code: c, Name: string(c), Symbol: string(c)}
}

// Name returns the display name, e.g. "Colones".
func (c Code) Name() string { return c.Info().Name }

// Symbol returns the display symbol, e.g. "₡".
func (c Code) Symbol() string { return c.Info().Symbol }

func (c Code) String() string { return string(c) }

func (c Code) lookup() (Info, bool) {
	for _, info := range supported {
		if info.Code == c {
			return info, true
		}
	}
	return Info{}, false
}
