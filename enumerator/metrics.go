package enumerator

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records enumeration activity as OTEL counters. It only uses the
// otel API; whether anything is exported is the host program's choice of
// meter provider. A nil *Metrics is valid and records nothing.
type Metrics struct {
	meter             metric.Meter
	regionsScanned    metric.Int64Counter
	failures          metric.Int64Counter
	maintenanceEvents metric.Int64Counter
}

// NewMetrics creates the counter set.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("aws-enumeration-lib")

	scanned, err := meter.Int64Counter(
		"ase_regions_scanned_total",
		metric.WithDescription("Total per-region listing batches completed"),
		metric.WithUnit("{region}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	failures, err := meter.Int64Counter(
		"ase_enumeration_failures_total",
		metric.WithDescription("Total enumeration operations that failed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	events, err := meter.Int64Counter(
		"ase_maintenance_events_total",
		metric.WithDescription("Total maintenance event records synthesized"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return &Metrics{
		meter:             meter,
		regionsScanned:    scanned,
		failures:          failures,
		maintenanceEvents: events,
	}, nil
}

// RecordRegionScanned counts one completed per-region batch.
func (m *Metrics) RecordRegionScanned(ctx context.Context, account, region string) {
	if m == nil {
		return
	}
	m.regionsScanned.Add(ctx, 1, metric.WithAttributes(
		attribute.String("account", account),
		attribute.String("region", region),
	))
}

// RecordFailure counts one failed operation.
func (m *Metrics) RecordFailure(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
	))
}

// RecordEvents counts synthesized maintenance event records.
func (m *Metrics) RecordEvents(ctx context.Context, account string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.maintenanceEvents.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("account", account),
	))
}
