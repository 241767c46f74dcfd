// Package metrics exposes the Prometheus instruments of the tracking core.
package metrics

import (
	"context"
	"strconv"

	"tracking/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every instrument, registered on one registry.
type Metrics struct {
	EventsTotal           *prometheus.CounterVec
	PropagatedEventsTotal prometheus.Counter
	CommandFailuresTotal  *prometheus.CounterVec
	OrdersByStatus        *prometheus.GaugeVec
}

// New registers the instruments on reg; pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracking_order_events_total",
			Help: "Total number of committed order status events, by target status.",
		},
			[]string{"status"},
		),

		PropagatedEventsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tracking_order_events_propagated_total",
			Help: "Total number of committed events written on rows of another owner.",
		}),

		CommandFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracking_command_failures_total",
			Help: "Total number of failed commands, by operation and reason.",
		},
			[]string{"operation", "reason"},
		),

		OrdersByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tracking_orders_by_status",
			Help: "Current number of orders in each status across every owner.",
		},
			[]string{"status"},
		),
	}
}

// EventsCommitted counts the events of a committed unit of work.
func (m *Metrics) EventsCommitted(_ context.Context, events []order.Event) {
	for _, e := range events {
		m.EventsTotal.WithLabelValues(statusLabel(e.Type())).Inc()
		if _, ok := e.Payload()[order.PayloadPropagatedFrom]; ok {
			m.PropagatedEventsTotal.Inc()
		}
	}
}

func (m *Metrics) CommandFailed(operation, reason string) {
	m.CommandFailuresTotal.WithLabelValues(operation, reason).Inc()
}

// SetOrdersByStatus replaces the gauge values with a fresh count.
func (m *Metrics) SetOrdersByStatus(counts map[order.Status]int64) {
	for status, n := range counts {
		m.OrdersByStatus.WithLabelValues(statusLabel(status)).Set(float64(n))
	}
}

func statusLabel(s order.Status) string {
	return strconv.Itoa(s.Int())
}
