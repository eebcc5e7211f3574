package currencyService

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/currency"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
	redisPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/redis"
)

const rateCacheTTL = time.Hour

func (s *currencyService) GetRates(ctx context.Context, base string) (currency.RatesResponse, error) {
	base = strings.ToUpper(base)

	rates, err := s.rates(ctx, base)
	if err != nil {
		return currency.RatesResponse{}, err
	}

	return currency.RatesResponse{
		Base:  base,
		Rates: rates,
	}, nil
}

func (s *currencyService) Convert(ctx context.Context, from string, to string, amount float64) (currency.ConvertResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if amount < 0 {
		return currency.ConvertResponse{}, currency.ErrInvalidAmountParam
	}

	rates, err := s.rates(ctx, from)
	if err != nil {
		return currency.ConvertResponse{}, err
	}

	rate, ok := rates[to]
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"from":       from,
			"to":         to,
		}).Warn("Target currency missing from rate table")
		return currency.ConvertResponse{}, currency.ErrCurrencyNotFound
	}

	return currency.ConvertResponse{
		From:            from,
		To:              to,
		Amount:          amount,
		ConvertedAmount: amount * rate,
	}, nil
}

// rates serves from the Redis cache when possible and refreshes it from
// the exchange API on a miss. If the exchange is unreachable, the last
// successfully fetched table is served instead.
func (s *currencyService) rates(ctx context.Context, base string) (map[string]float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cached, err := s.redis.GetRates(ctx, base)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redisPkg.ErrRatesNotCached) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"base":       base,
			"error":      err.Error(),
		}).Warn("Rate cache lookup failed, falling back to exchange API")
	}

	fetched, err := s.exchange.FetchRates(base)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"base":       base,
			"error":      err.Error(),
		}).Error("Failed to fetch exchange rates")

		// The exchange is down. The last good table beats no answer.
		stale, staleErr := s.redis.GetStaleRates(ctx, base)
		if staleErr == nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"base":       base,
			}).Warn("Serving stale exchange rates")
			return stale, nil
		}

		return nil, currency.ErrRatesUnavailable
	}

	if err := s.redis.SetRates(ctx, base, fetched, rateCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"base":       base,
			"error":      err.Error(),
		}).Warn("Failed to cache exchange rates")
	}

	return fetched, nil
}
