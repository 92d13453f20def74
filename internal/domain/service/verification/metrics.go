package verification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	operationStart = "start"
	operationCheck = "check"

	resultApproved = "approved"
	resultRejected = "rejected"
)

var (
	verificationsStartedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verify_gateway",
			Name:      "verifications_started_total",
			Help:      "Total verifications accepted by the provider, by returned status.",
		},
		[]string{"status"},
	)

	verificationChecksCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verify_gateway",
			Name:      "verification_checks_total",
			Help:      "Total code checks answered by the provider.",
		},
		[]string{"result"}, // approved or rejected
	)

	providerErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verify_gateway",
			Name:      "provider_errors_total",
			Help:      "Total failed calls to the verification provider.",
		},
		[]string{"operation"},
	)

	providerRequestDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "verify_gateway",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of calls to the verification provider.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
