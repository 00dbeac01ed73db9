package fixer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expenses-bot/internal/logger"
)

const (
	latestRatesUrl = "https://api.apilayer.com/fixer/latest"
	baseParam      = "base"
	relativesParam = "symbols"
)

type apiKeyGetter interface {
	ApiKey() string
}

type Client struct {
	apiKey     string
	httpClient *http.Client
}

type ratesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
}

func New(getter apiKeyGetter) *Client {
	return &Client{
		apiKey:     getter.ApiKey(),
		httpClient: &http.Client{},
	}
}

func (c *Client) GetRates(ctx context.Context, base string, relatives []string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestRatesUrl, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building rates request")
	}

	req.Header.Set("apikey", c.apiKey)
	q := req.URL.Query()
	q.Add(baseParam, base)
	q.Add(relativesParam, strings.Join(relatives, ","))
	req.URL.RawQuery = q.Encode()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting rates")
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.Error("failed to close rates response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading rates response")
	}

	rates := ratesResponse{}
	err = json.Unmarshal(body, &rates)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	if !rates.Success {
		return nil, errors.New("error from fixer (success = false)")
	}

	return rates.Rates, nil
}
