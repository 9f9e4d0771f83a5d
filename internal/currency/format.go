package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured or it fails to parse.
const DefaultLocale = "en"

// Formatter renders amounts for display: currency symbol, no decimals and
// locale thousands grouping ("₡1,234,568" in English, "₡1.234.568" in Spanish).
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for a BCP 47 locale such as "en" or "es-CR".
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{printer: message.NewPrinter(tag)}
}

// Amount formats d as currency c. Rounding is half-to-even.
// A negative amount keeps the symbol first: "₡-1,200".
func (f Formatter) Amount(c Code, d decimal.Decimal) string {
	return c.Symbol() + f.Number(d)
}

// Money formats m in its own currency.
func (f Formatter) Money(m Money) string {
	return f.Amount(m.Currency, m.Amount)
}

// Number formats d with grouping and no decimals. Amounts beyond int64
// are grouped from their digit string with the locale's separator.
func (f Formatter) Number(d decimal.Decimal) string {
	n := d.RoundBank(0).BigInt()
	if n.IsInt64() {
		return f.printer.Sprintf("%d", n.Int64())
	}
	return f.group(n.String())
}

func (f Formatter) group(digits string) string {
	var b strings.Builder
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		b.WriteByte('-')
		digits = rest
	}
	sep := f.separator()
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// separator is the thousands separator, read off "1<sep>000<sep>000".
func (f Formatter) separator() string {
	s := f.printer.Sprintf("%d", 1000000)
	if i := strings.Index(s, "000"); i > 1 && strings.HasPrefix(s, "1") {
		return s[1:i]
	}
	return ","
}

// Int formats a count with grouping.
func (f Formatter) Int(n int) string {
	return f.printer.Sprintf("%d", n)
}
