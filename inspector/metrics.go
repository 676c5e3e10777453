package inspector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-inspector/metrics"
)

const namespace = "selection"

var (
	selections = metrics.NewCounter(
		"selections",
		namespace,
		"selection changes by outcome",
		[]string{"outcome"},
	)
	selectedElement   = selections.WithLabelValues("element")
	selectedNone      = selections.WithLabelValues("none")
	selectedUnmounted = selections.WithLabelValues("unmounted")

	requests = metrics.NewCounter(
		"requests",
		namespace,
		"inspectElement requests",
		[]string{"kind"},
	)
	initialRequests = requests.WithLabelValues("initial")
	refreshRequests = requests.WithLabelValues("refresh")
	failedRequests  = requests.WithLabelValues("failed")

	responses = metrics.NewCounter(
		"responses",
		namespace,
		"inspectedElement responses by outcome",
		[]string{"outcome"},
	)
	acceptedResponses  = responses.WithLabelValues("accepted")
	staleResponses     = responses.WithLabelValues("stale")
	malformedResponses = responses.WithLabelValues("malformed")
	emptyResponses     = responses.WithLabelValues("empty")

	responseLatency = metrics.NewHistogramWithBuckets(
		"response_latency_seconds",
		namespace,
		"latency between an inspectElement request and the accepted response",
		[]string{},
		prometheus.ExponentialBuckets(0.005, 2, 12),
	).WithLabelValues()
)
