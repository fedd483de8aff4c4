package server

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/liamren/verisig/pkg/verifier"
)

// Request outcome labels for the requests counter.
const (
	ResultOK                 = "ok"
	ResultMissingHeader      = "missing_header"
	ResultMalformedSignature = "malformed_signature"
	ResultRecoveryFailure    = "recovery_failure"
	ResultReadError          = "read_error"
)

// Metrics contains the Prometheus metrics for the verification endpoint
type Metrics struct {
	RequestsTotal *prometheus.CounterVec
	PayloadBytes  prometheus.Histogram
}

// NewMetrics initializes and registers metrics on the default registry
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers metrics with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "verisig_requests_total",
			Help: "Verification requests by outcome",
		}, []string{"result"}),
		PayloadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "verisig_payload_bytes",
			Help:    "Size of successfully verified payloads in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
}

// resultForError maps a verification error to its outcome label.
func resultForError(err error) string {
	switch {
	case errors.Is(err, verifier.ErrMalformedSignature):
		return ResultMalformedSignature
	case errors.Is(err, verifier.ErrRecoveryFailure):
		return ResultRecoveryFailure
	default:
		return "error"
	}
}
