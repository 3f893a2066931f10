package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"golang.org/x/time/rate"
)

// Client talks to the career roadmap REST API. It implements
// catalog.Upstream.
type Client struct {
	cfg      Config
	http     *http.Client
	limiter  *rate.Limiter
	observer Observer
}

// NewClient creates a Client for the API at cfg.BaseURL.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		limiter:  rate.NewLimiter(limit, 1),
		observer: observer,
	}
}

// FetchCareerPaths returns all career paths the API knows. Entries without a
// usable string identifier are skipped.
func (c *Client) FetchCareerPaths(ctx context.Context) ([]domain.CareerPath, error) {
	var payload []careerPayload
	if err := c.get(ctx, "fetch_career_paths", "", "/careers/", &payload); err != nil {
		return nil, err
	}
	paths := make([]domain.CareerPath, 0, len(payload))
	for _, p := range payload {
		cp, err := p.toDomain()
		if err != nil {
			continue
		}
		paths = append(paths, cp)
	}
	return paths, nil
}

// FetchCareerModules returns the pre-scored modules for one career path.
func (c *Client) FetchCareerModules(ctx context.Context, careerID string) ([]domain.ScoredModule, error) {
	var payload careerModulesPayload
	path := "/careers/" + url.PathEscape(careerID) + "/modules/"
	if err := c.get(ctx, "fetch_career_modules", careerID, path, &payload); err != nil {
		return nil, err
	}
	mods := make([]domain.ScoredModule, 0, len(payload.Modules))
	for _, m := range payload.Modules {
		if m.Code == "" {
			continue
		}
		mods = append(mods, m.toDomain())
	}
	return mods, nil
}

func (c *Client) get(ctx context.Context, op, careerID, path string, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	var lastErr error
	attempts := 0
	for i := 0; i < 1+c.cfg.MaxRetries; i++ {
		attempts++
		if err := c.limiter.Wait(ctx); err != nil {
			lastErr = err
			break
		}
		lastErr = c.doRequest(ctx, path, out)
		if lastErr == nil {
			c.observer.OnCallComplete(CallEvent{
				Op:        op,
				CareerID:  careerID,
				LatencyMs: time.Since(start).Milliseconds(),
				Attempts:  attempts,
				Success:   true,
			})
			return nil
		}
		// A malformed body will not improve on retry.
		if ctx.Err() != nil || errors.Is(lastErr, ErrBadResponse) {
			break
		}
	}

	err := classify(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		CareerID:  careerID,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  attempts,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) doRequest(ctx context.Context, path string, out any) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 500 {
			return fmt.Errorf("catalog api returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d: %s", ErrBadResponse, resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding body: %v", ErrBadResponse, err)
	}
	return nil
}

func classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.Is(err, ErrBadResponse):
		return err
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadResponse):
		return "BAD_RESPONSE"
	default:
		return "RETRY_EXHAUSTED"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
