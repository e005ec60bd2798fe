// Package api implements the HTTP client for the Fingrid Open Data API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/tejusbharadwaj/gridview/internal/apperrors"
	"github.com/tejusbharadwaj/gridview/internal/config"
)

// Client fetches time-series events from the Fingrid Open Data API.
//
// Every request is rate limited client side and responses are kept in an
// in-memory LRU cache keyed by variable and time range, so repeating a
// query from the menu does not hit the network again.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *lru.Cache
	logger     *logrus.Logger
}

// NewClient creates a Fingrid API client. A missing API key is an
// authentication error at construction time, not per call.
func NewClient(cfg config.APIConfig, logger *logrus.Logger) (*Client, error) {
	if cfg.Key == "" {
		return nil, apperrors.Authentication(
			"FINGRID_API_KEY is missing. Set it as an environment variable")
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 5.0
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 10
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.Key,
		timeout:    timeout,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		cache:      cache,
		logger:     logger,
	}, nil
}

// Fetch issues one GET request for the given variable's events between the
// two ISO 8601 timestamps and returns the decoded JSON records. Input is
// validated before any network traffic. HTTP 401 maps to an authentication
// error, 404 to a validation error, and transport failures or any other
// non-200 status to a network error. There are no retries.
func (c *Client) Fetch(ctx context.Context, variableID, startTime, endTime string) ([]map[string]any, error) {
	if variableID == "" {
		return nil, apperrors.Validation("variable ID cannot be empty")
	}
	if startTime == "" || endTime == "" {
		return nil, apperrors.Validation("start and end times are required")
	}

	cacheKey := fmt.Sprintf("%s|%s|%s", variableID, startTime, endTime)
	if cached, ok := c.cache.Get(cacheKey); ok {
		c.logger.WithFields(logrus.Fields{
			"variable_id": variableID,
			"cache_key":   cacheKey,
		}).Debug("Serving response from cache")
		return cached.([]map[string]any), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, err, "request canceled while rate limited")
	}

	requestID := uuid.NewString()
	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"variable_id": variableID,
		"start_time":  startTime,
		"end_time":    endTime,
	}).Info("Fetching data from Fingrid API")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/%s/events/json", c.baseURL, variableID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNetwork, err, "failed to build request")
	}
	req.Header.Set("x-api-key", c.apiKey)

	q := url.Values{}
	q.Set("start_time", startTime)
	q.Set("end_time", endTime)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apperrors.Authentication("invalid API key, please check your FINGRID_API_KEY")
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.Validation("variable ID %s not found", variableID)
	case resp.StatusCode != http.StatusOK:
		return nil, apperrors.Network("HTTP error: got status %d", resp.StatusCode)
	}

	var records []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, apperrors.Wrap(apperrors.KindDataProcessing, err, "failed to decode response")
	}

	c.cache.Add(cacheKey, records)

	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"variable_id": variableID,
		"records":     len(records),
	}).Info("Fetch completed")

	return records, nil
}

func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.Wrap(apperrors.KindNetwork, err, "request timed out, please try again")
	}
	return apperrors.Wrap(apperrors.KindNetwork, err, "failed to connect to Fingrid API")
}
