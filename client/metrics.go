package client

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName scopes the client's meter and tracer. The client
// instruments against the global providers; exporter wiring belongs to the
// embedding application.
const instrumentationName = "github.com/fmpdata/fmpdata-go"

// metrics holds the OpenTelemetry instruments recorded per executed request.
type metrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	retryTotal      metric.Int64Counter
	quotaWait       metric.Float64Histogram
}

// newMetrics creates the metric instruments on the global meter provider.
func newMetrics() (*metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestTotal, err := meter.Int64Counter("fmp.client.requests",
		metric.WithDescription("Total number of executed API calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fmp.client.requests counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("fmp.client.request.duration",
		metric.WithDescription("Duration of API calls in seconds, across all attempts"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fmp.client.request.duration histogram: %w", err)
	}

	retryTotal, err := meter.Int64Counter("fmp.client.retries",
		metric.WithDescription("Total number of retried attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fmp.client.retries counter: %w", err)
	}

	quotaWait, err := meter.Float64Histogram("fmp.client.quota.wait",
		metric.WithDescription("Time spent waiting on local quota windows in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fmp.client.quota.wait histogram: %w", err)
	}

	return &metrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		retryTotal:      retryTotal,
		quotaWait:       quotaWait,
	}, nil
}

// recordRequest records a completed call: total, duration, and any retries
// spent on it.
func (m *metrics) recordRequest(ctx context.Context, endpointName, status string, attempts int, duration time.Duration) {
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpointName),
		attribute.String("status", status),
	))
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("endpoint", endpointName),
	))
	if attempts > 1 {
		m.retryTotal.Add(ctx, int64(attempts-1), metric.WithAttributes(
			attribute.String("endpoint", endpointName),
		))
	}
}

// recordQuotaWait records a suspension caused by an exhausted quota window.
func (m *metrics) recordQuotaWait(ctx context.Context, endpointName string, wait time.Duration) {
	if wait <= 0 {
		return
	}
	m.quotaWait.Record(ctx, wait.Seconds(), metric.WithAttributes(
		attribute.String("endpoint", endpointName),
	))
}
