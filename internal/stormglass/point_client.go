package stormglass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ngmaloney/channel-cross/internal/log"
	"github.com/ngmaloney/channel-cross/internal/models"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.stormglass.io"
	DefaultSource  = "noaa"
)

// PointClient implements ForecastClient using the Stormglass weather/point endpoint
type PointClient struct {
	baseURL    string
	apiKey     string
	source     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a PointClient
type Option func(*PointClient)

// WithBaseURL points the client at another host, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *PointClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithSource selects the data source to request
func WithSource(source string) Option {
	return func(c *PointClient) {
		c.source = source
	}
}

// WithMinInterval spaces requests at least d apart. Stormglass meters
// requests per day; a request inside the interval fails with *ThrottledError.
func WithMinInterval(d time.Duration) Option {
	return func(c *PointClient) {
		if d <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewPointClient creates a new Stormglass client authenticated with apiKey
func NewPointClient(apiKey string, opts ...Option) *PointClient {
	c := &PointClient{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		source:  DefaultSource,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the data source the client requests
func (c *PointClient) Source() string {
	return c.source
}

// GetHourlyForecast retrieves hourly records for a point
func (c *PointClient) GetHourlyForecast(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.RawHour, error) {
	if r := c.limiter.Reserve(); r.Delay() > 0 {
		retryIn := r.Delay()
		r.Cancel()
		log.Debugw("forecast request throttled", "retryIn", retryIn)
		return nil, &ThrottledError{RetryIn: retryIn}
	}

	requestURL := c.pointURL(lat, lon, start, end)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	log.Debugw("requesting forecast", "lat", lat, "lon", lon, "start", start, "end", end, "source", c.source)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var pointResp pointResponse
	if err := json.NewDecoder(resp.Body).Decode(&pointResp); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}

	log.Infow("forecast fetched",
		"hours", len(pointResp.Hours),
		"requestCount", pointResp.Meta.RequestCount,
		"dailyQuota", pointResp.Meta.DailyQuota)

	return pointResp.Hours, nil
}

// pointURL builds the weather/point request. Timestamps are sent as UTC ISO 8601.
func (c *PointClient) pointURL(lat, lon float64, start, end time.Time) string {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.4f", lat))
	params.Set("lng", fmt.Sprintf("%.4f", lon))
	params.Set("params", strings.Join(Params, ","))
	params.Set("start", start.UTC().Format(time.RFC3339))
	params.Set("end", end.UTC().Format(time.RFC3339))
	if c.source != "" {
		params.Set("source", c.source)
	}

	return fmt.Sprintf("%s/v2/weather/point?%s", c.baseURL, params.Encode())
}

// Internal types for Stormglass API responses

type pointResponse struct {
	Hours []models.RawHour `json:"hours"`
	Meta  struct {
		Cost         int      `json:"cost"`
		DailyQuota   int      `json:"dailyQuota"`
		RequestCount int      `json:"requestCount"`
		Lat          float64  `json:"lat"`
		Lng          float64  `json:"lng"`
		Params       []string `json:"params"`
		Start        string   `json:"start"`
		End          string   `json:"end"`
	} `json:"meta"`
}

var _ ForecastClient = (*PointClient)(nil)
