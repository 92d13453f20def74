package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pricingRefreshesCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "verify_gateway",
		Name:      "pricing_refreshes_total",
		Help:      "Total pricing snapshot refreshes.",
	},
	[]string{"result"}, // ok, source_error, store_error
)
