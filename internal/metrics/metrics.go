package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes histograms for HTTP and database latency and counters for
// booking outcomes.
type Metrics struct {
	HTTPRequestDuration *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	BookingConflicts    prometheus.Counter
	RosterImported      prometheus.Counter
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seatdesk_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seatdesk_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee_by_id', 'create_booking', ...
		BookingsCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "seatdesk_bookings_created_total",
			Help: "Total number of bookings successfully created.",
		}),
		BookingConflicts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "seatdesk_booking_conflicts_total",
			Help: "Total number of booking attempts rejected because the seat was taken.",
		}),
		RosterImported: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "seatdesk_roster_imported_total",
			Help: "Total number of employee rows imported from the roster file.",
		}),
	}

	return metrics
}
