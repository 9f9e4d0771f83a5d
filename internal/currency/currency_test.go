package currency

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{"upper", "CRC", CRC, false},
		{"lower", "usd", USD, false},
		{"padded", "  eur ", EUR, false},
		{"real but unsupported", "GBP", "", true},
		{"not a code", "dollars", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Fatalf("Parse(%q) err = %v, want ErrUnsupported", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	if got := CRC.Symbol(); got != "₡" {
		t.Errorf("CRC symbol = %q, want ₡", got)
	}
	if got := EUR.Name(); got != "Euros" {
		t.Errorf("EUR name = %q, want Euros", got)
	}
	if Code("XYZ").Valid() {
		t.Error("XYZ reported valid")
	}
	if len(All()) != 3 {
		t.Errorf("All() has %d entries, want 3", len(All()))
	}
}

func TestFormatter_Amount(t *testing.T) {
	f := NewFormatter("en")
	tests := []struct {
		code Code
		in   string
		want string
	}{
		{CRC, "1234567.4", "₡1,234,567"},
		{USD, "999.5", "$1,000"},
		{USD, "998.5", "$998"}, // half to even
		{EUR, "0", "€0"},
		{CRC, "-4800", "₡-4,800"},
		{CRC, "100000000000000000000", "₡100,000,000,000,000,000,000"},
		{USD, "9223372036854775808", "$9,223,372,036,854,775,808"},
		{EUR, "-12345678901234567890.5", "€-12,345,678,901,234,567,890"},
	}
	for _, tt := range tests {
		got := f.Amount(tt.code, decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("Amount(%s, %s) = %q, want %q", tt.code, tt.in, got, tt.want)
		}
	}
}

func TestFormatter_NumberBeyondInt64UsesLocaleSeparator(t *testing.T) {
	big := decimal.RequireFromString("100000000000000000000")
	if got := NewFormatter("de").Number(big); got != "100.000.000.000.000.000.000" {
		t.Errorf("de Number = %q", got)
	}
}

func TestNewFormatter_BadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale!!")
	if got := f.Int(12000); got != "12,000" {
		t.Errorf("Int(12000) = %q, want 12,000", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := FromFloat(100, USD)
	b := FromFloat(30.5, USD)

	if got := a.Sub(b); !got.Amount.Equal(decimal.RequireFromString("69.5")) {
		t.Errorf("Sub = %s, want 69.5", got.Amount)
	}
	if got := b.MulInt(4); !got.Amount.Equal(decimal.NewFromInt(122)) {
		t.Errorf("MulInt = %s, want 122", got.Amount)
	}
	if got := a.DivInt(8); !got.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("DivInt = %s, want 12.5", got.Amount)
	}
	if a.Cmp(b) != 1 {
		t.Error("expected 100 > 30.5")
	}
}

func TestMoney_MixedCurrencyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("adding USD to CRC did not panic")
		}
	}()
	FromFloat(1, CRC).Add(FromFloat(1, USD))
}
