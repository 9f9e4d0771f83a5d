package rates

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource returns a fixed rate or error and counts calls.
type countingSource struct {
	rate  decimal.Decimal
	err   error
	calls int
}

func (s *countingSource) Rate(context.Context, currency.Code, currency.Code) (decimal.Decimal, error) {
	s.calls++
	return s.rate, s.err
}

func TestConverter_IdentityMakesNoCall(t *testing.T) {
	src := &countingSource{rate: decimal.NewFromInt(500)}
	conv := NewConverter(NewProvider(src))

	for _, info := range currency.All() {
		in := currency.New(decimal.RequireFromString("1234.5678"), info.Code)
		out := conv.Convert(context.Background(), in, info.Code)
		assert.True(t, out.Amount.Equal(in.Amount), "%s: %s != %s", info.Code, out.Amount, in.Amount)
		assert.Equal(t, info.Code, out.Currency)
	}
	assert.Zero(t, src.calls)
	assert.Empty(t, conv.Warnings())
}

func TestConverter_AppliesRate(t *testing.T) {
	src := &countingSource{rate: decimal.RequireFromString("0.0019")}
	conv := NewConverter(NewProvider(src))

	out := conv.Convert(context.Background(), currency.FromFloat(100000, currency.CRC), currency.USD)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(190)), "got %s", out.Amount)
	assert.Equal(t, currency.USD, out.Currency)
	assert.Equal(t, 1, src.calls)
}

func TestConverter_NetworkFailureFallsBack(t *testing.T) {
	src := &countingSource{err: errors.New("dial tcp: no such host")}
	conv := NewConverter(NewProvider(src))

	in := currency.FromFloat(250, currency.EUR)
	out := conv.Convert(context.Background(), in, currency.CRC)

	assert.True(t, out.Amount.Equal(in.Amount), "fallback must keep the amount, got %s", out.Amount)
	assert.Equal(t, currency.CRC, out.Currency)
	require.Len(t, conv.Warnings(), 1)
	w := conv.Warnings()[0]
	assert.Equal(t, currency.EUR, w.From)
	assert.Equal(t, currency.CRC, w.To)
	assert.Contains(t, w.String(), "1:1")
}

func TestProvider_FallbackFromHTTP(t *testing.T) {
	srv, _ := newRateServer(t, http.StatusBadGateway, `bad gateway`)
	q := NewProvider(NewClient(srv.URL)).Quote(context.Background(), currency.USD, currency.EUR)

	assert.True(t, q.Fallback)
	assert.True(t, q.Rate.Equal(decimal.NewFromInt(1)))
	assert.ErrorIs(t, q.Err, ErrUnexpectedStatus)
}

func TestProvider_Offline(t *testing.T) {
	q := NewProvider(Offline{}).Quote(context.Background(), currency.USD, currency.EUR)
	assert.True(t, q.Fallback)
	assert.ErrorIs(t, q.Err, ErrOffline)
}
