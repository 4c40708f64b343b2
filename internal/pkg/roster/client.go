package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/fieldpay/fieldpay-backend-go/internal/config"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
)

// Client implements worker.Repository against the external roster
// service. The roster is read-only from this side; the last successful
// response is cached in memory so lookups keep working through roster
// outages.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu       sync.RWMutex
	cached   []worker.Worker
	hasCache bool
}

func NewClient(cfg config.RosterConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// List implements worker.Repository. A fetch failure after at least one
// successful fetch returns the cached list together with
// worker.ErrRosterStale so callers can degrade instead of failing.
func (c *Client) List(ctx context.Context) ([]worker.Worker, error) {
	workers, err := c.fetch(ctx)
	if err != nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.hasCache {
			slog.Warn("roster fetch failed, serving cached list", "error", err)
			return c.cached, worker.ErrRosterStale
		}
		return nil, fmt.Errorf("%w: %v", worker.ErrRosterUnavailable, err)
	}

	c.mu.Lock()
	c.cached = workers
	c.hasCache = true
	c.mu.Unlock()

	return workers, nil
}

// GetByID implements worker.Repository. A stale list is good enough for
// a lookup; staleness is only an error when the worker is absent.
func (c *Client) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	workers, err := c.List(ctx)
	if err != nil && !errors.Is(err, worker.ErrRosterStale) {
		return worker.Worker{}, err
	}

	for _, w := range workers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

// Refresh fetches the roster and updates the cache. It is the cron
// target that keeps the cache warm between requests.
func (c *Client) Refresh(ctx context.Context) error {
	workers, err := c.fetch(ctx)
	if err != nil {
		return fmt.Errorf("refreshing roster: %w", err)
	}

	c.mu.Lock()
	c.cached = workers
	c.hasCache = true
	c.mu.Unlock()

	slog.Debug("roster cache refreshed", "worker_count", len(workers))
	return nil
}

func (c *Client) fetch(ctx context.Context) ([]worker.Worker, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/workers", nil)
	if err != nil {
		return nil, fmt.Errorf("building roster request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roster returned status %d", resp.StatusCode)
	}

	var workers []worker.Worker
	if err := json.NewDecoder(resp.Body).Decode(&workers); err != nil {
		return nil, fmt.Errorf("decoding roster response: %w", err)
	}
	return workers, nil
}
