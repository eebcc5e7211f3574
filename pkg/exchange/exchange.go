package exchange

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type ItfExchange interface {
	FetchRates(base string) (map[string]float64, error)
}

type exchangeClient struct {
	apiURL string
	client *http.Client
}

func New() ItfExchange {
	apiURL := os.Getenv("EXCHANGE_RATE_API_URL")
	if apiURL == "" {
		apiURL = "https://open.er-api.com/v6/latest/"
	}

	return &exchangeClient{
		apiURL: apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (e *exchangeClient) FetchRates(base string) (map[string]float64, error) {
	url := e.apiURL + base

	var lastErr error
	for i := 0; i < 3; i++ {
		rates, err := e.fetchOnce(url)
		if err != nil {
			lastErr = err
			logrus.Warn(fmt.Sprintf("Error fetching exchange rates (attempt %d): %v", i+1, err))
			time.Sleep(2 * time.Second)
			continue
		}
		return rates, nil
	}

	return nil, lastErr
}

func (e *exchangeClient) fetchOnce(url string) (map[string]float64, error) {
	resp, err := e.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var response struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := jsoniter.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Rates) == 0 {
		return nil, errors.New("exchange rate API returned no rates")
	}

	for code, rate := range response.Rates {
		if rate <= 0 {
			logrus.Warn(fmt.Sprintf("Dropping invalid rate for currency %s", code))
			delete(response.Rates, code)
		}
	}

	return response.Rates, nil
}
