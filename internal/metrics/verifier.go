package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "requests_total",
		Help:      "Count of transaction verification requests by outcome.",
	}, []string{"network", "outcome"})

	verifyRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "request_duration_seconds",
		Help:      "Duration of transaction verification requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "outcome"})

	verifyRequestInputs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "request_inputs",
		Help:      "Number of inputs per verified transaction.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	verifyInputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "inputs_total",
		Help:      "Count of verified inputs by engine status.",
	}, []string{"network", "status", "valid"})

	prevoutResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "prevout_resolve_duration_seconds",
		Help:      "Duration of resolving a single previous output.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Verifier tracks metrics for transaction verification.
type Verifier struct {
	network model.Network
}

// NewVerifier constructs a metrics collector for the verifier.
func NewVerifier(network model.Network) *Verifier {
	if network == "" {
		network = "unknown"
	}
	return &Verifier{network: network}
}

// ObserveVerify records the outcome of one verification request.
func (m Verifier) ObserveVerify(report *model.Report, err error, started time.Time) {
	outcome := "invalid"
	switch {
	case err != nil:
		outcome = "error"
	case report.Valid:
		outcome = "valid"
	}
	verifyRequestsTotal.WithLabelValues(string(m.network), outcome).Inc()
	verifyRequestDuration.WithLabelValues(string(m.network), outcome).Observe(time.Since(started).Seconds())
	if report != nil {
		verifyRequestInputs.WithLabelValues(string(m.network)).Observe(float64(len(report.Inputs)))
	}
}

// ObserveInput records the engine verdict of one input.
func (m Verifier) ObserveInput(verdict model.Verdict) {
	valid := "false"
	if verdict.Valid {
		valid = "true"
	}
	verifyInputsTotal.WithLabelValues(string(m.network), string(verdict.Status), valid).Inc()
}

// ObserveResolve records a single previous output lookup.
func (m Verifier) ObserveResolve(err error, started time.Time) {
	prevoutResolveDuration.WithLabelValues(string(m.network), resolveStatus(err)).
		Observe(time.Since(started).Seconds())
}

func resolveStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, chain.ErrOutputNotFound):
		return "not_found"
	default:
		return "error"
	}
}
