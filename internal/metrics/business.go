package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Domains recorded by the use case decorators.
const (
	DomainAuth  = "auth"
	DomainVault = "vault"
)

// Generic outcomes. Login operations add their own intermediate statuses
// such as "two_factor_required".
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records one counter and one duration histogram per
// operation, labelled by domain, operation and status.
type BusinessMetrics interface {
	RecordOperation(ctx context.Context, domain, operation, status string)
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

// StatusOf maps an operation error to StatusSuccess or StatusError.
func StatusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// Observe records a finished operation that started at start.
func Observe(ctx context.Context, m BusinessMetrics, domain, operation, status string, start time.Time) {
	m.RecordOperation(ctx, domain, operation, status)
	m.RecordDuration(ctx, domain, operation, time.Since(start), status)
}

type otelBusinessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
}

// NewBusinessMetrics creates the recorder on top of provider, naming the
// instruments <namespace>_operations_total and
// <namespace>_operation_duration_seconds.
func NewBusinessMetrics(provider *Provider) (BusinessMetrics, error) {
	meter := provider.MeterProvider().Meter(provider.Namespace())

	operations, err := meter.Int64Counter(
		instrumentName(provider.Namespace(), "operations_total"),
		metric.WithDescription("Login and vault operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		instrumentName(provider.Namespace(), "operation_duration_seconds"),
		metric.WithDescription("Duration of login and vault operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &otelBusinessMetrics{operations: operations, durations: durations}, nil
}

func instrumentName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "_" + name
}

func labels(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *otelBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, labels(domain, operation, status))
}

func (b *otelBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), labels(domain, operation, status))
}

type noopBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a recorder that drops everything; used when
// METRICS_ENABLED is false.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return noopBusinessMetrics{}
}

func (noopBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (noopBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}
