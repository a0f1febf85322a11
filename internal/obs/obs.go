// Package obs wires the structured logging and metrics shared by every
// package in the session orchestration layer. Nothing in tacmap, risk, or
// routesolver depends on obs directly — those stay pure per spec.md §5
// ("single-threaded and synchronous" with no hidden side effects); only
// session.PlanningSession takes an *obs.Observer and threads it through
// solver calls for lifecycle/fallback visibility.
package obs

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Observer bundles a zap logger with the Prometheus collectors the solvers
// report against. A nil *Observer is valid and behaves as a no-op (solvers
// must not require an Observer to run in tests).
type Observer struct {
	log *zap.SugaredLogger

	solveDuration *prometheus.HistogramVec
	fallbackTotal *prometheus.CounterVec
}

var (
	defaultOnce     sync.Once
	defaultObserver *Observer
)

// Default returns a package-wide Observer backed by a production zap logger
// and a dedicated Prometheus registry (not the global one, so importing this
// package never panics on double-registration in tests).
func Default() *Observer {
	defaultOnce.Do(func() {
		logger, err := zap.NewProduction()
		if err != nil {
			logger = zap.NewNop()
		}
		defaultObserver = New(logger, prometheus.NewRegistry())
	})

	return defaultObserver
}

// New builds an Observer from an explicit zap logger and Prometheus
// registerer, grounded on the metrics wiring in PossumXI-Asgard_Arobi and
// dd0wney-graphdb (both register a HistogramVec per operation and a
// CounterVec for degraded/fallback paths).
func New(logger *zap.Logger, reg prometheus.Registerer) *Observer {
	o := &Observer{
		log: logger.Sugar(),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ghostroute",
			Subsystem: "routesolver",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of a single route solve, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		fallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghostroute",
			Subsystem: "routesolver",
			Name:      "fallback_total",
			Help:      "Count of solver fallbacks, by origin method and reason.",
		}, []string{"method", "reason"}),
	}

	if reg != nil {
		reg.MustRegister(o.solveDuration, o.fallbackTotal)
	}

	return o
}

// ObserveSolve records solve duration for method. Safe to call on a nil
// Observer.
func (o *Observer) ObserveSolve(method string, start time.Time) {
	if o == nil {
		return
	}
	o.solveDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// RecordFallback increments the fallback counter and logs the degradation.
// Safe to call on a nil Observer.
func (o *Observer) RecordFallback(method, reason string) {
	if o == nil {
		return
	}
	o.fallbackTotal.WithLabelValues(method, reason).Inc()
	o.log.Infow("solver fallback", "method", method, "reason", reason)
}

// Infow logs a structured info line. Safe to call on a nil Observer.
func (o *Observer) Infow(msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.Infow(msg, keysAndValues...)
}

// Warnw logs a structured warning line. Safe to call on a nil Observer.
func (o *Observer) Warnw(msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.Warnw(msg, keysAndValues...)
}

// Errorw logs a structured error line. Safe to call on a nil Observer.
func (o *Observer) Errorw(msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.Errorw(msg, keysAndValues...)
}
