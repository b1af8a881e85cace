// Package swapi validates catalog ids against the external Star Wars API.
package swapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"holocron/internal/config"
	"holocron/internal/models"
	"holocron/internal/observability"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
)

const breakerName = "swapi"

// Validator reports whether an entity exists in the external catalog.
type Validator interface {
	Exists(ctx context.Context, entityType string, id uint) (bool, error)
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Mode    string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// OptionsFromConfig builds Options from application configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.SWAPIBaseURL,
		Mode:    cfg.SWAPIMode,
		Timeout: cfg.SWAPITimeout,
	}
}

// Client calls {BaseURL}/{entityType}/{id}/ through a circuit breaker.
type Client struct {
	baseURL string
	lenient bool
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[bool]
}

// NewClient creates a validation client.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	observability.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				slog.Default().Warn("Opening circuit",
					slog.String("breaker", breakerName),
					slog.Uint64("failures", uint64(counts.TotalFailures)),
					slog.Float64("failure_rate", failureRatio*100),
				)
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Default().Info("Circuit breaker state transition",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			observability.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			observability.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		lenient: opts.Mode == config.SWAPIModeLenient,
		http:    httpClient,
		cb:      cb,
	}
}

// errUnexpectedStatus marks a non-2xx, non-404 upstream answer.
var errUnexpectedStatus = errors.New("unexpected upstream status")

// Exists reports whether {entityType}/{id} resolves upstream. A 404 is
// (false, nil). Other failures are (false, nil) in lenient mode and a
// BAD_UPSTREAM error in strict mode.
func (c *Client) Exists(ctx context.Context, entityType string, id uint) (bool, error) {
	ctx, span := observability.StartClientSpan(ctx, "swapi.Exists",
		attribute.String("swapi.resource", entityType),
		attribute.Int64("swapi.id", int64(id)),
	)
	defer span.End()

	start := time.Now()
	found, err := c.cb.Execute(func() (bool, error) {
		return c.fetch(ctx, entityType, id)
	})
	observability.UpstreamLatency.WithLabelValues(entityType).Observe(time.Since(start).Seconds())

	switch {
	case err == nil && found:
		observability.UpstreamRequests.WithLabelValues(entityType, "found").Inc()
		return true, nil
	case err == nil:
		observability.UpstreamRequests.WithLabelValues(entityType, "missing").Inc()
		return false, nil
	}

	observability.RecordError(span, err)
	outcome := "error"
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		outcome = "rejected"
	}
	observability.UpstreamRequests.WithLabelValues(entityType, outcome).Inc()
	slog.Default().WarnContext(ctx, "Upstream validation failed",
		slog.String("resource", entityType),
		slog.Uint64("id", uint64(id)),
		slog.String("outcome", outcome),
		slog.String("error", err.Error()),
	)

	if c.lenient {
		return false, nil
	}
	return false, models.NewBadUpstreamError("Upstream validation failed", err)
}

func (c *Client) fetch(ctx context.Context, entityType string, id uint) (bool, error) {
	url := fmt.Sprintf("%s/%s/%d/", c.baseURL, entityType, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
