// Package salary looks up compensation estimates from an external salary
// service. Responses are cached for the process lifetime since estimates
// for a given role/sector/company tuple do not change between requests.
package salary

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// ErrUnavailable is returned when no service URL is configured or the
// service could not produce an estimate.
var ErrUnavailable = errors.New("salary service unavailable")

type estimateResponse struct {
	AnnualSalary float64 `json:"annual_salary"`
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   sync.Map
}

// New builds a client for the given base URL. An empty URL yields a client
// whose Estimate always reports ErrUnavailable.
func New(baseURL string) *Client {
	c := &Client{baseURL: baseURL}
	if baseURL != "" {
		c.http = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return c
}

// Estimate returns the annual salary estimate for the role at the given
// sector and company. Results are cached; failures are not.
func (c *Client) Estimate(role, sector, company string) (float64, error) {
	if c.baseURL == "" {
		return 0, ErrUnavailable
	}

	key := role + "\x00" + sector + "\x00" + company
	if v, ok := c.cache.Load(key); ok {
		return v.(float64), nil
	}

	q := url.Values{}
	q.Set("role", role)
	q.Set("sector", sector)
	q.Set("company", company)
	resp, err := c.http.Get(c.baseURL + "/v1/estimate?" + q.Encode())
	if err != nil {
		return 0, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return 0, ErrUnavailable
	}

	var er estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return 0, ErrUnavailable
	}
	if er.AnnualSalary <= 0 {
		return 0, ErrUnavailable
	}

	c.cache.Store(key, er.AnnualSalary)
	return er.AnnualSalary, nil
}
