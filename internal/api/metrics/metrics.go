// Package metrics defines the custom Prometheus metrics of the restaurant
// API. It is the single source of truth for metric names, labels and help
// strings. Metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// ── Account metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful signups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created through signup.",
	},
)

// LoginsTotal counts token login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of token login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ──────────────────────────────────────────────────────────

// MenuItemOperationsTotal counts successful menu item writes.
// Label:
//   - operation: "create", "update", "partial_update" or "delete"
var MenuItemOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_item_operations_total",
		Help:      "Total number of successful menu item writes, by operation.",
	},
	[]string{"operation"},
)

// ── Booking metrics ──────────────────────────────────────────────────────────

// BookingOperationsTotal counts successful booking writes.
// Label:
//   - operation: "create", "update", "partial_update" or "delete"
var BookingOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_operations_total",
		Help:      "Total number of successful booking writes, by operation.",
	},
	[]string{"operation"},
)

// BookingGuests observes the party size of new bookings.
var BookingGuests = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_guests",
		Help:      "Number of guests per created booking.",
		Buckets:   []float64{1, 2, 4, 6, 8, 12, 20},
	},
)
