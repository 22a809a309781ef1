// Package catapi queries TheCatAPI breed catalog.
package catapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/whiskerworks/spycat/src/api/data"
	"github.com/whiskerworks/spycat/src/api/types"
)

const fetchTimeout = 10 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	rdb     *redis.Client // nil disables caching
	ttl     time.Duration
	client  *http.Client
}

func NewClient(baseURL, apiKey string, rdb *redis.Client, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.thecatapi.com/v1"
	}
	if ttl <= 0 {
		rdb = nil
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		rdb:     rdb,
		ttl:     ttl,
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

type breed struct {
	Name string `json:"name"`
}

// FetchBreedNames returns the set of known breed names. Any transport
// failure, non-2xx status or unreadable body surfaces as
// types.ErrServiceUnavailable; cache failures fall through to the API.
func (c *Client) FetchBreedNames(ctx context.Context) (map[string]struct{}, error) {
	if c.rdb != nil {
		if cached := data.CachedBreeds(ctx, c.rdb); cached != nil {
			return toSet(cached), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/breeds", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrServiceUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: breed service unreachable: %v", types.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: breed service returned %d", types.ErrServiceUnavailable, resp.StatusCode)
	}

	var breeds []breed
	if err := json.NewDecoder(resp.Body).Decode(&breeds); err != nil {
		return nil, fmt.Errorf("%w: bad breed service response: %v", types.ErrServiceUnavailable, err)
	}

	names := make([]string, 0, len(breeds))
	for _, b := range breeds {
		names = append(names, b.Name)
	}

	if c.rdb != nil {
		_ = data.CacheBreeds(ctx, c.rdb, names, c.ttl)
	}

	return toSet(names), nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
