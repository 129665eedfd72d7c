// Package metrics records progression counters with prometheus
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

const namespace = "vp"

// Grant outcomes
const (
	GrantCompleted = "completed"
	GrantSkipped   = "skipped"
	GrantEmpty     = "empty"
	GrantCanceled  = "canceled"
)

// Recorder holds the progression counters. A nil Recorder records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	purchases  *prometheus.CounterVec
	rejections *prometheus.CounterVec
	grants     *prometheus.CounterVec
	unlocks    *prometheus.CounterVec
	epSpent    prometheus.Counter
}

// New creates a recorder on its own registry
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		purchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchases_total",
				Help:      "Successful ability purchases by catalog",
			},
			[]string{"catalog"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchase_rejections_total",
				Help:      "Rejected purchases by reason",
			},
			[]string{"reason"},
		),
		grants: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "free_grants_total",
				Help:      "Free ability grants by class and outcome",
			},
			[]string{"class", "outcome"},
		),
		unlocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_unlocks_total",
				Help:      "Class catalogs unlocked",
			},
			[]string{"catalog"},
		),
		epSpent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ep_spent_total",
				Help:      "EP debited by purchases",
			},
		),
	}

	r.registry.MustRegister(r.purchases, r.rejections, r.grants, r.unlocks, r.epSpent)
	return r
}

// Registry returns the gatherer holding the counters
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Purchase counts a successful purchase
func (r *Recorder) Purchase(catalogID string, cost int) {
	if r == nil {
		return
	}
	r.purchases.WithLabelValues(catalogID).Inc()
	if cost > 0 {
		r.epSpent.Add(float64(cost))
	}
}

// Rejection counts a rejected purchase by its error reason
func (r *Recorder) Rejection(err error) {
	if r == nil || err == nil {
		return
	}
	reason := string(errors.GetReason(err))
	if reason == "" {
		reason = string(errors.GetCode(err))
	}
	r.rejections.WithLabelValues(reason).Inc()
}

// Grant counts a grant outcome
func (r *Recorder) Grant(class, outcome string) {
	if r == nil {
		return
	}
	r.grants.WithLabelValues(class, outcome).Inc()
}

// Unlock counts a catalog unlock
func (r *Recorder) Unlock(catalogID string) {
	if r == nil {
		return
	}
	r.unlocks.WithLabelValues(catalogID).Inc()
}

// WriteToTextfile writes the counters in the node exporter textfile format
func (r *Recorder) WriteToTextfile(path string) error {
	if r == nil {
		return nil
	}
	if path == "" {
		return errors.InvalidArgument("path is required")
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
