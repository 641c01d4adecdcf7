// Package explore fetches book suggestions from a public fake-data API and
// keeps the candidate list the user picks imports from.
package explore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/blackwell-systems/bookbin/internal/catalog"
)

const (
	// DefaultBaseURL is the public fakerapi endpoint.
	DefaultBaseURL = "https://fakerapi.it/api/v1"
	// DefaultCount is how many suggestions one fetch asks for.
	DefaultCount = 10

	maxBodyBytes = 1 << 20
)

// Client fetches book stubs from the explore source.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a Client. An empty baseURL selects DefaultBaseURL, a zero
// timeout means 15s, and rps <= 0 disables throttling.
func New(baseURL string, timeout time.Duration, rps float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Fetch requests count book stubs. Entries without a title are dropped.
func (c *Client) Fetch(ctx context.Context, count int) ([]catalog.ExploreStub, error) {
	if count <= 0 {
		count = DefaultCount
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("_quantity", strconv.Itoa(count))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/books?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return decode(body)
}

// envelope is the fakerapi response wrapper. Data stays raw so a
// non-array payload can be told apart from an empty one.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func decode(body []byte) ([]catalog.ExploreStub, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	raw := strings.TrimSpace(string(env.Data))
	if !strings.HasPrefix(raw, "[") {
		return nil, fmt.Errorf("%w: data is not a list", ErrMalformedResponse)
	}
	var stubs []catalog.ExploreStub
	if err := json.Unmarshal(env.Data, &stubs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	out := make([]catalog.ExploreStub, 0, len(stubs))
	for _, s := range stubs {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// checkStatus maps non-2xx responses to ErrUnavailable.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
}
