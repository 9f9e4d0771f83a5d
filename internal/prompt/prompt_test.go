package prompt

import (
	"errors"
	"testing"
	"time"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input   string
		want    currency.Code
		wantErr bool
	}{
		{"crc", currency.CRC, false},
		{"USD", currency.USD, false},
		{" Eur", currency.EUR, false},
		{"JPY", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCurrency(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrRejected) {
				t.Errorf("ParseCurrency(%q) err = %v, want ErrRejected", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCurrency(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestAmountParsers(t *testing.T) {
	tests := []struct {
		name    string
		parser  Parser[decimal.Decimal]
		input   string
		want    string
		wantErr bool
	}{
		{"plain", ParseAmount, "1500", "1500", false},
		{"decimal", ParseAmount, " 12.75 ", "12.75", false},
		{"negative allowed", ParseAmount, "-3", "-3", false},
		{"letters", ParseAmount, "abc", "", true},
		{"grouped", ParseAmount, "1,000", "", true},
		{"blank", ParseAmount, "  ", "", true},
		{"positive ok", ParsePositiveAmount, "0.01", "0.01", false},
		{"positive zero", ParsePositiveAmount, "0", "", true},
		{"positive negative", ParsePositiveAmount, "-5", "", true},
		{"non-negative zero", ParseNonNegativeAmount, "0", "0", false},
		{"non-negative negative", ParseNonNegativeAmount, "-0.5", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parser(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrRejected) {
					t.Fatalf("err = %v, want ErrRejected", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"2023-02-29", "29/02/2024", "2024-2-1", ""} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrRejected) {
			t.Errorf("ParseDate(%q) err = %v, want ErrRejected", bad, err)
		}
	}
}

func TestParseDaysPerWeek(t *testing.T) {
	for _, ok := range []string{"1", "5", " 7 "} {
		if _, err := ParseDaysPerWeek(ok); err != nil {
			t.Errorf("ParseDaysPerWeek(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"0", "8", "2.5", "five"} {
		if _, err := ParseDaysPerWeek(bad); err == nil {
			t.Errorf("ParseDaysPerWeek(%q) accepted", bad)
		}
	}
}

func TestParseYesNo(t *testing.T) {
	tests := map[string]bool{"y": true, "YES": true, "s": true, "Sí": true, "n": false, "No": false}
	for in, want := range tests {
		got, err := ParseYesNo(in)
		if err != nil || got != want {
			t.Errorf("ParseYesNo(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseYesNo("maybe"); err == nil {
		t.Error("ParseYesNo(maybe) accepted")
	}
}

func TestWithDefault(t *testing.T) {
	p := WithDefault(ParseCurrency, currency.CRC)
	if got, err := p(""); err != nil || got != currency.CRC {
		t.Errorf("blank = %q, %v; want CRC", got, err)
	}
	if got, _ := p("eur"); got != currency.EUR {
		t.Errorf("eur = %q, want EUR", got)
	}
}

func TestValidate(t *testing.T) {
	v := Validate(ParseDaysPerWeek)
	if v("3") != nil {
		t.Error("Validate rejected 3")
	}
	if v("9") == nil {
		t.Error("Validate accepted 9")
	}
}

func TestIsSentinel(t *testing.T) {
	for _, in := range []string{"done", " DONE ", "fin"} {
		if !IsSentinel(in) {
			t.Errorf("IsSentinel(%q) = false", in)
		}
	}
	if IsSentinel("Gym") {
		t.Error("IsSentinel(Gym) = true")
	}
}
