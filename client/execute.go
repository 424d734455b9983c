package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fmpdata/fmpdata-go/endpoint"
	"github.com/fmpdata/fmpdata-go/errors"
	"github.com/fmpdata/fmpdata-go/logger"
	"github.com/fmpdata/fmpdata-go/util"
	"github.com/fmpdata/fmpdata-go/version"
)

// quotaLogEvery is how often (in completed calls) window usage is logged.
const quotaLogEvery = 10

// Execute resolves, paces, and performs one endpoint call, returning the
// raw response body. Transient failures are retried per the configured
// policy; everything else surfaces as a typed error on the first
// occurrence.
func (c *Client) Execute(ctx context.Context, ep *endpoint.Endpoint, args map[string]any) ([]byte, error) {
	u, err := ep.URL(c.config.BaseURL, args)
	if err != nil {
		return nil, err
	}
	query := u.Query()
	query.Set("apikey", c.config.APIKey)
	u.RawQuery = query.Encode()

	log := c.log.WithFields(logger.Fields(
		logger.FieldRequestID, uuid.NewString(),
		logger.FieldEndpoint, ep.Name,
	))
	if ep.Deprecated != "" {
		log.Warn("endpoint is deprecated", logger.Fields("note", ep.Deprecated))
	}

	ctx, span := c.tracer.Start(ctx, "fmp."+ep.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("fmp.endpoint", ep.Name),
			attribute.String("fmp.version", string(ep.Version)),
			attribute.String("fmp.shape", ep.Shape.String()),
		),
	)
	defer span.End()

	start := time.Now()
	body, attempts, err := c.attemptLoop(ctx, ep, u, log)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = errors.Wrap(err).Code.String()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("fmp.attempts", attempts))
	c.metrics.recordRequest(ctx, ep.Name, status, attempts, duration)

	if err != nil {
		log.Debug("call failed", logger.Fields(
			logger.FieldAttempt, attempts,
			logger.FieldDuration, duration.Milliseconds(),
			logger.FieldError, err.Error(),
		))
		return nil, err
	}

	log.Debug("call completed", logger.Fields(
		logger.FieldAttempt, attempts,
		logger.FieldDuration, duration.Milliseconds(),
	))
	c.logQuotaUsage(log)
	return body, nil
}

// attemptLoop runs the retry loop around single attempts. It returns the
// number of attempts performed alongside the result.
func (c *Client) attemptLoop(ctx context.Context, ep *endpoint.Endpoint, u *url.URL, log *logger.Logger) ([]byte, int, error) {
	for attempt := 1; ; attempt++ {
		if err := c.admit(ctx, ep, log); err != nil {
			return nil, attempt - 1, err
		}

		log.Debug("sending request", logger.Fields(
			logger.FieldMethod, ep.HTTPMethod(),
			logger.FieldURL, maskedURL(u),
			logger.FieldAttempt, attempt,
		))

		body, status, err := c.doOnce(ctx, ep, u)
		if err == nil {
			log.Debug("request succeeded", logger.Fields(
				logger.FieldStatus, status,
				logger.FieldAttempt, attempt,
			))
			return body, attempt, nil
		}

		decision := c.policy.Decide(attempt, err)
		if !decision.Retry {
			return nil, attempt, decision.Err
		}

		log.Debug("retrying after failure", logger.Fields(
			logger.FieldAttempt, attempt,
			logger.FieldWait, decision.Wait.Milliseconds(),
			logger.FieldError, err.Error(),
		))
		if err := c.sleep(ctx, decision.Wait); err != nil {
			return nil, attempt, err
		}
	}
}

// admit gates one attempt on the local quota windows. Waiting is not
// counted as an attempt; with FailFast the exhausted quota is an error
// carrying the tracker's suggested wait.
func (c *Client) admit(ctx context.Context, ep *endpoint.Endpoint, log *logger.Logger) error {
	ok, wait := c.tracker.Admit()
	if ok {
		return nil
	}
	if c.config.FailFast {
		return errors.NewQuotaExceededError(wait)
	}

	log.Debug("quota exhausted, waiting", logger.Fields(logger.FieldWait, wait.Milliseconds()))
	c.metrics.recordQuotaWait(ctx, ep.Name, wait)
	return c.tracker.Wait(ctx)
}

// doOnce performs a single HTTP attempt and maps transport failures and
// non-2xx statuses to typed errors.
func (c *Client) doOnce(ctx context.Context, ep *endpoint.Endpoint, u *url.URL) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, ep.HTTPMethod(), u.String(), nil)
	if err != nil {
		return nil, 0, errors.NewValidationError(fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("request aborted: %w", ctx.Err())
		}
		var netErr net.Error
		if stderrors.As(err, &netErr) && netErr.Timeout() {
			return nil, 0, errors.NewTimeoutError(err)
		}
		return nil, 0, errors.NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := errors.ParseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, resp.StatusCode, errors.NewRateLimitError(body, retryAfter)
	}
	if classErr := errors.ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return nil, resp.StatusCode, classErr
	}

	return body, resp.StatusCode, nil
}

// logQuotaUsage logs window consumption every quotaLogEvery completed calls.
func (c *Client) logQuotaUsage(log *logger.Logger) {
	if atomic.AddUint64(&c.requests, 1)%quotaLogEvery != 0 {
		return
	}
	for _, u := range c.tracker.Usage() {
		log.Debug("quota window usage", logger.Fields(
			logger.FieldWindow, u.Window,
			"used", u.Used,
			"limit", u.Limit,
		))
	}
}

// maskedURL renders the request URL with the API key masked for logs.
func maskedURL(u *url.URL) string {
	masked := *u
	query := masked.Query()
	if key := query.Get("apikey"); key != "" {
		query.Set("apikey", util.MaskSecret(key, 4))
		masked.RawQuery = query.Encode()
	}
	return masked.String()
}
