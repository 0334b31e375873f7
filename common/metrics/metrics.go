package metrics

import (
	"strconv"

	"mergington-hub/common/errorx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector exposes signup traffic and seat occupancy to Prometheus.
type Collector struct {
	signupTotal     *prometheus.CounterVec
	unregisterTotal *prometheus.CounterVec
	participants    *prometheus.GaugeVec
}

// NewCollector creates a collector registered on the default registerer.
func NewCollector(namespace string) *Collector {
	return NewCollectorWith(namespace, prometheus.DefaultRegisterer)
}

// NewCollectorWith creates a collector on an explicit registerer. Tests pass
// a fresh registry to avoid duplicate-registration panics.
func NewCollectorWith(namespace string, reg prometheus.Registerer) *Collector {
	if namespace == "" {
		namespace = "activities"
	}

	factory := promauto.With(reg)

	return &Collector{
		signupTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signup_total",
				Help:      "Total number of signup attempts",
			},
			[]string{"activity", "outcome"},
		),
		unregisterTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unregister_total",
				Help:      "Total number of unregister attempts",
			},
			[]string{"activity", "outcome"},
		),
		participants: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "participants",
				Help:      "Current number of enrolled participants per activity",
			},
			[]string{"activity"},
		),
	}
}

// ObserveSignup records one signup attempt and its outcome.
func (c *Collector) ObserveSignup(activity string, err error) {
	c.signupTotal.WithLabelValues(activity, outcome(err)).Inc()
}

// ObserveUnregister records one unregister attempt and its outcome.
func (c *Collector) ObserveUnregister(activity string, err error) {
	c.unregisterTotal.WithLabelValues(activity, outcome(err)).Inc()
}

// SetParticipants records the current enrollment of an activity.
func (c *Collector) SetParticipants(activity string, count int) {
	c.participants.WithLabelValues(activity).Set(float64(count))
}

// outcome maps an operation result to a metric label: "ok" for success,
// the business error code otherwise.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return strconv.Itoa(errorx.FromError(err).Code)
}
