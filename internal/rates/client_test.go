package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateServer(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestClient_Rate(t *testing.T) {
	srv, paths := newRateServer(t, http.StatusOK,
		`{"base":"USD","date":"2024-01-02","rates":{"USD":1,"CRC":518.25,"EUR":0.91}}`)

	rate, err := NewClient(srv.URL+"/v4/latest").Rate(context.Background(), currency.USD, currency.CRC)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("518.25")), "rate = %s", rate)
	assert.Equal(t, []string{"/v4/latest/USD"}, *paths)
}

func TestClient_RateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{}`, ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, `{"result":"error"}`, ErrUnexpectedStatus},
		{"missing key", http.StatusOK, `{"base":"USD","rates":{"USD":1}}`, ErrMissingRate},
		{"zero rate", http.StatusOK, `{"base":"USD","rates":{"EUR":0}}`, ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newRateServer(t, tt.status, tt.body)
			_, err := NewClient(srv.URL).Rate(context.Background(), currency.USD, currency.EUR)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	srv, _ := newRateServer(t, http.StatusOK, `{"rates": [not json`)
	_, err := NewClient(srv.URL).Rate(context.Background(), currency.USD, currency.EUR)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestClient_NoRatesTable(t *testing.T) {
	srv, _ := newRateServer(t, http.StatusOK, `{"base":"USD"}`)
	_, err := NewClient(srv.URL).Latest(context.Background(), currency.USD)
	assert.Error(t, err)
}

func TestNewClient_DefaultURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("  ").baseURL)
	assert.Equal(t, "http://x/y/", NewClient("http://x/y").baseURL)
}
