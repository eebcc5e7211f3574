package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrRatesNotCached = errors.New("exchange rates not cached")

type IRedis interface {
	SetRates(ctx context.Context, base string, rates map[string]float64, expiration time.Duration) error
	GetRates(ctx context.Context, base string) (map[string]float64, error)
	GetStaleRates(ctx context.Context, base string) (map[string]float64, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func rateKey(base string) string {
	return "exchange_rates:" + base
}

// staleRateKey never expires. It keeps the last good rate table around so
// lookups can survive an exchange API outage after the fresh key's TTL runs
// out.
func staleRateKey(base string) string {
	return "exchange_rates_stale:" + base
}

func (r *redisClient) SetRates(ctx context.Context, base string, rates map[string]float64, expiration time.Duration) error {
	payload, err := jsoniter.Marshal(rates)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error marshaling rates for base %s: %v", base, err))
		return err
	}

	if err := r.client.Set(ctx, rateKey(base), payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching rates for base %s: %v", base, err))
		return err
	}

	if err := r.client.Set(ctx, staleRateKey(base), payload, 0).Err(); err != nil {
		logrus.Warn(fmt.Sprintf("Error updating stale rate copy for base %s: %v", base, err))
	}

	logrus.Debug(fmt.Sprintf("Cached %d exchange rates for base %s", len(rates), base))
	return nil
}

func (r *redisClient) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	return r.getRates(ctx, rateKey(base), base)
}

func (r *redisClient) GetStaleRates(ctx context.Context, base string) (map[string]float64, error) {
	return r.getRates(ctx, staleRateKey(base), base)
}

func (r *redisClient) getRates(ctx context.Context, key string, base string) (map[string]float64, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("No cached rates for base %s", base))
		return nil, ErrRatesNotCached
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting cached rates for base %s: %v", base, err))
		return nil, err
	}

	var rates map[string]float64
	if err := jsoniter.Unmarshal([]byte(val), &rates); err != nil {
		logrus.Error(fmt.Sprintf("Error unmarshaling cached rates for base %s: %v", base, err))
		return nil, err
	}

	return rates, nil
}
