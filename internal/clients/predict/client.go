// Package predict provides a client for the external price-prediction
// service.
package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:5000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Compile-time interface check
var _ interfaces.PredictClient = (*Client)(nil)

// Client implements the PredictClient interface.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new prediction service client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// predictionsResponse is the service's wire shape.
type predictionsResponse struct {
	Predictions []models.PredictionPoint `json:"predictions"`
}

// GetPredictions fetches the forecast curve for an instrument. Any failure
// past the rate limiter — transport error, non-success status, malformed
// body — degrades to an empty slice with a nil error: prediction data is
// best-effort and must never surface as a fault. Context cancellation is
// the one exception and propagates.
func (c *Client) GetPredictions(ctx context.Context, ticker string) ([]models.PredictionPoint, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/predict/%s", c.baseURL, ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("ticker", ticker).Msg("Prediction request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn().Str("ticker", ticker).Err(err).Msg("Prediction service unreachable")
		return []models.PredictionPoint{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().Str("ticker", ticker).Int("status", resp.StatusCode).Msg("No prediction data available")
		return []models.PredictionPoint{}, nil
	}

	var body predictionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn().Str("ticker", ticker).Err(err).Msg("Malformed prediction response")
		return []models.PredictionPoint{}, nil
	}
	if body.Predictions == nil {
		return []models.PredictionPoint{}, nil
	}

	return body.Predictions, nil
}
