package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smarak",
			Name:      "bookings_created_total",
			Help:      "Completed visit bookings by monument.",
		},
		[]string{"monument"},
	)

	parkingReservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smarak",
			Name:      "parking_reservations_total",
			Help:      "Parking reservations by monument.",
		},
		[]string{"monument"},
	)

	paymentFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "smarak",
			Name:      "payment_failures_total",
			Help:      "Rejected payment confirmations.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, parkingReservations, paymentFailures)
	})
}

// IncBooking counts a completed visit booking.
func IncBooking(monument string) {
	bookingsCreated.WithLabelValues(monument).Inc()
}

// IncReservation counts a new parking reservation.
func IncReservation(monument string) {
	parkingReservations.WithLabelValues(monument).Inc()
}

// IncPaymentFailure counts a rejected payment confirmation.
func IncPaymentFailure() {
	paymentFailures.Inc()
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
