// Package metrics exposes Prometheus collectors for ledger operations and
// dataset saves.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/debtbook/internal/common"
)

const namespace = "debtbook"

// Result label values.
const (
	ResultOK         = "ok"
	ResultInvalid    = "invalid"
	ResultNotFound   = "not_found"
	ResultStoreError = "store_error"
	ResultError      = "error"
)

// Collectors groups the debtbook metrics.
type Collectors struct {
	Operations   *prometheus.CounterVec
	Saves        *prometheus.CounterVec
	SaveDuration prometheus.Histogram
	People       prometheus.Gauge
}

// NewCollectors creates the collectors and registers them on reg. A nil reg
// gets a private registry, which keeps several instances in one process from
// colliding.
func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collectors{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Ledger operations by name and result.",
		}, []string{"op", "result"}),
		Saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_saves_total",
			Help:      "Whole-dataset saves by result.",
		}, []string{"result"}),
		SaveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_save_duration_seconds",
			Help:      "Time spent writing the dataset.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		People: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "people",
			Help:      "People currently in the dataset.",
		}),
	}

	for _, col := range []prometheus.Collector{c.Operations, c.Saves, c.SaveDuration, c.People} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return c, nil
}

// Result maps an operation error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, common.ErrValidation):
		return ResultInvalid
	case errors.Is(err, common.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, common.ErrStoreWrite), errors.Is(err, common.ErrStoreRead), errors.Is(err, common.ErrCorruptStore):
		return ResultStoreError
	default:
		return ResultError
	}
}

// ObserveOperation counts one call of op. A nil *Collectors records nothing,
// as do the other Observe and Set methods.
func (c *Collectors) ObserveOperation(op string, err error) {
	if c == nil {
		return
	}
	c.Operations.WithLabelValues(op, Result(err)).Inc()
}

// ObserveSave records one save attempt.
func (c *Collectors) ObserveSave(elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	c.SaveDuration.Observe(elapsed.Seconds())
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.Saves.WithLabelValues(result).Inc()
}

// SetPeople records the current number of people.
func (c *Collectors) SetPeople(n int) {
	if c == nil {
		return
	}
	c.People.Set(float64(n))
}
