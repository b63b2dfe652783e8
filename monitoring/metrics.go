// Package monitoring counts inventory operations on a private Prometheus
// registry. The system has no network listener, so metrics are gathered
// on demand and rendered by the CLI instead of being scraped.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Monitor owns the registry and the inventory metric families.
type Monitor struct {
	registry *prometheus.Registry

	operations   *prometheus.CounterVec
	ticketCount  prometheus.Gauge
	stockTotal   prometheus.Gauge
	sweepRemoved prometheus.Counter
	sweepZeroed  prometheus.Counter
}

// NewMonitor builds a Monitor with all metrics registered.
func NewMonitor() *Monitor {
	m := &Monitor{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_operations_total",
				Help: "Total inventory operations by type and status",
			},
			[]string{"operation", "status"},
		),
		ticketCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_tickets",
				Help: "Current number of live ticket records",
			},
		),
		stockTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_stock_total",
				Help: "Sum of stock across all live tickets",
			},
		),
		sweepRemoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "inventory_sweep_removed_total",
				Help: "Tickets removed by the expiry sweep",
			},
		),
		sweepZeroed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "inventory_sweep_zeroed_total",
				Help: "Tickets zero-stocked by the expiry sweep",
			},
		),
	}

	m.registry.MustRegister(m.operations, m.ticketCount, m.stockTotal, m.sweepRemoved, m.sweepZeroed)
	return m
}

// TrackOperation counts one inventory operation.
func (m *Monitor) TrackOperation(operation, status string) {
	m.operations.WithLabelValues(operation, status).Inc()
}

// SetInventorySize updates the ticket count and stock total gauges.
func (m *Monitor) SetInventorySize(tickets, stock int) {
	m.ticketCount.Set(float64(tickets))
	m.stockTotal.Set(float64(stock))
}

// TrackSweep counts the effect of one expiry sweep.
func (m *Monitor) TrackSweep(removed, zeroed int) {
	m.sweepRemoved.Add(float64(removed))
	m.sweepZeroed.Add(float64(zeroed))
}

// Gather snapshots the registry for rendering.
func (m *Monitor) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}
