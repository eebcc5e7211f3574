package currencyService

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/currency"
	redisPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/redis"
)

type fakeExchange struct {
	rates   map[string]float64
	err     error
	fetches int
}

func (f *fakeExchange) FetchRates(_ string) (map[string]float64, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

type fakeRateCache struct {
	cached map[string]map[string]float64
	stale  map[string]map[string]float64
	sets   int
}

func (f *fakeRateCache) SetRates(_ context.Context, base string, rates map[string]float64, _ time.Duration) error {
	if f.cached == nil {
		f.cached = map[string]map[string]float64{}
	}
	if f.stale == nil {
		f.stale = map[string]map[string]float64{}
	}
	f.cached[base] = rates
	f.stale[base] = rates
	f.sets++
	return nil
}

func (f *fakeRateCache) GetRates(_ context.Context, base string) (map[string]float64, error) {
	rates, ok := f.cached[base]
	if !ok {
		return nil, redisPkg.ErrRatesNotCached
	}
	return rates, nil
}

func (f *fakeRateCache) GetStaleRates(_ context.Context, base string) (map[string]float64, error) {
	rates, ok := f.stale[base]
	if !ok {
		return nil, redisPkg.ErrRatesNotCached
	}
	return rates, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestGetRates_CacheMissFetchesAndCaches(t *testing.T) {
	ex := &fakeExchange{rates: map[string]float64{"USD": 1.09, "GBP": 0.85}}
	cache := &fakeRateCache{}
	service := NewCurrencyService(newTestLogger(), ex, cache)

	got, err := service.GetRates(context.Background(), "eur")
	if err != nil {
		t.Fatalf("GetRates() error = %v", err)
	}

	if got.Base != "EUR" {
		t.Errorf("base = %q, want EUR", got.Base)
	}
	if got.Rates["USD"] != 1.09 {
		t.Errorf("USD rate = %v, want 1.09", got.Rates["USD"])
	}
	if ex.fetches != 1 {
		t.Errorf("exchange fetches = %d, want 1", ex.fetches)
	}
	if cache.sets != 1 {
		t.Errorf("cache writes = %d, want 1", cache.sets)
	}
}

func TestGetRates_CacheHitSkipsExchange(t *testing.T) {
	ex := &fakeExchange{err: errors.New("exchange unreachable")}
	cache := &fakeRateCache{cached: map[string]map[string]float64{
		"EUR": {"USD": 1.09},
	}}
	service := NewCurrencyService(newTestLogger(), ex, cache)

	got, err := service.GetRates(context.Background(), "EUR")
	if err != nil {
		t.Fatalf("GetRates() error = %v", err)
	}

	if got.Rates["USD"] != 1.09 {
		t.Errorf("USD rate = %v, want 1.09", got.Rates["USD"])
	}
	if ex.fetches != 0 {
		t.Errorf("exchange fetches = %d, want 0", ex.fetches)
	}
}

func TestGetRates_ExchangeFailureWithoutStaleCopy(t *testing.T) {
	ex := &fakeExchange{err: errors.New("exchange unreachable")}
	service := NewCurrencyService(newTestLogger(), ex, &fakeRateCache{})

	_, err := service.GetRates(context.Background(), "EUR")
	if !errors.Is(err, currency.ErrRatesUnavailable) {
		t.Fatalf("GetRates() error = %v, want %v", err, currency.ErrRatesUnavailable)
	}
}

func TestGetRates_ExchangeFailureServesStaleCopy(t *testing.T) {
	// Fresh key expired, stale copy from an earlier successful fetch
	// survives.
	ex := &fakeExchange{err: errors.New("exchange unreachable")}
	cache := &fakeRateCache{stale: map[string]map[string]float64{
		"EUR": {"USD": 1.07},
	}}
	service := NewCurrencyService(newTestLogger(), ex, cache)

	got, err := service.GetRates(context.Background(), "EUR")
	if err != nil {
		t.Fatalf("GetRates() error = %v", err)
	}

	if got.Rates["USD"] != 1.07 {
		t.Errorf("USD rate = %v, want stale 1.07", got.Rates["USD"])
	}
	if ex.fetches != 1 {
		t.Errorf("exchange fetches = %d, want 1", ex.fetches)
	}
}

func TestGetRates_SuccessfulFetchRefreshesStaleCopy(t *testing.T) {
	ex := &fakeExchange{rates: map[string]float64{"USD": 1.09}}
	cache := &fakeRateCache{stale: map[string]map[string]float64{
		"EUR": {"USD": 1.01},
	}}
	service := NewCurrencyService(newTestLogger(), ex, cache)

	if _, err := service.GetRates(context.Background(), "EUR"); err != nil {
		t.Fatalf("GetRates() error = %v", err)
	}

	if cache.stale["EUR"]["USD"] != 1.09 {
		t.Errorf("stale copy = %v, want refreshed to 1.09", cache.stale["EUR"]["USD"])
	}
}

func TestConvert(t *testing.T) {
	cache := &fakeRateCache{cached: map[string]map[string]float64{
		"EUR": {"USD": 1.1, "GBP": 0.85},
	}}

	tests := []struct {
		name    string
		from    string
		to      string
		amount  float64
		want    float64
		wantErr error
	}{
		{name: "converts with cached rate", from: "eur", to: "usd", amount: 100, want: 110},
		{name: "zero amount", from: "EUR", to: "GBP", amount: 0, want: 0},
		{name: "negative amount rejected", from: "EUR", to: "USD", amount: -5, wantErr: currency.ErrInvalidAmountParam},
		{name: "unknown target currency", from: "EUR", to: "XXX", amount: 10, wantErr: currency.ErrCurrencyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCurrencyService(newTestLogger(), &fakeExchange{}, cache)

			got, err := service.Convert(context.Background(), tt.from, tt.to, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if math.Abs(got.ConvertedAmount-tt.want) > 1e-9 {
				t.Errorf("ConvertedAmount = %v, want %v", got.ConvertedAmount, tt.want)
			}
		})
	}
}
