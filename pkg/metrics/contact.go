package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes.
const (
	OutcomeSent        = "sent"
	OutcomeInvalid     = "invalid"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
)

// Contact collects contact endpoint metrics. A nil *Contact records nothing.
type Contact struct {
	submissions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewContact registers the contact collectors on reg.
func NewContact(reg prometheus.Registerer) *Contact {
	m := &Contact{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Contact form submissions by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contact_submission_duration_seconds",
				Help:    "Time spent handling a contact submission.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.submissions, m.duration)
	return m
}

// Observe records one handled submission.
func (m *Contact) Observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
