package currencyService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/currency"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/exchange"
	redisPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/redis"
)

type ICurrencyService interface {
	GetRates(ctx context.Context, base string) (currency.RatesResponse, error)
	Convert(ctx context.Context, from string, to string, amount float64) (currency.ConvertResponse, error)
}

type currencyService struct {
	log      *logrus.Logger
	exchange exchange.ItfExchange
	redis    redisPkg.IRedis
}

func NewCurrencyService(log *logrus.Logger, ex exchange.ItfExchange, redis redisPkg.IRedis) ICurrencyService {
	return &currencyService{
		log:      log,
		exchange: ex,
		redis:    redis,
	}
}
