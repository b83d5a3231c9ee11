// Package market provides the HTTP client for the market-data provider.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"ipowatch/internal/models"
)

// DefaultBaseURL is the production Finnhub API root.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// DefaultTimeout bounds a single calendar request.
const DefaultTimeout = 20 * time.Second

// FetchError reports a failed calendar fetch: transport failure,
// non-2xx response or an undecodable payload. It is fatal for the run.
type FetchError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("market data request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("market data request failed: %v", e.Err)
}

// Unwrap returns the underlying error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client is a read-only Finnhub API client.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a Client for the given base URL and API token.
// Empty baseURL and zero timeout fall back to the defaults.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type calendarQuery struct {
	From  string `url:"from"`
	To    string `url:"to"`
	Token string `url:"token"`
}

type calendarResponse struct {
	IPOCalendar []models.IPORecord `json:"ipoCalendar"`
}

// IPOCalendar fetches IPO calendar entries for the inclusive date
// range [from, to], both ISO dates. Results come back in provider
// order; the provider returns small result sets, so there is no
// pagination.
func (c *Client) IPOCalendar(ctx context.Context, from, to string) ([]models.IPORecord, error) {
	q, err := query.Values(calendarQuery{From: from, To: to, Token: c.token})
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("encoding query: %w", err)}
	}

	url := c.baseURL + "/calendar/ipo?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var payload calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decoding calendar payload: %w", err)}
	}

	return payload.IPOCalendar, nil
}

// Today returns the current calendar date in loc as an ISO date,
// suitable for the calendar query parameters.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format("2006-01-02")
}
