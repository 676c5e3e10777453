package bridge

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-inspector/metrics"
)

const (
	namespace    = "bridge"
	messageLabel = "message"
)

var (
	messages = metrics.NewCounter(
		"messages",
		namespace,
		"bridge messages by direction and outcome",
		[]string{messageLabel, "state"},
	)
	listeners = metrics.NewGauge(
		"listeners",
		namespace,
		"registered listeners",
		[]string{messageLabel},
	)
)

type tracker struct {
	sent, sendFailed            prometheus.Counter
	received, dropped, rejected prometheus.Counter
	listeners                   prometheus.Gauge
}

func newTracker(name string) *tracker {
	return &tracker{
		sent:       messages.WithLabelValues(name, "sent"),
		sendFailed: messages.WithLabelValues(name, "send_failed"),
		received:   messages.WithLabelValues(name, "received"),
		dropped:    messages.WithLabelValues(name, "dropped"),
		rejected:   messages.WithLabelValues(name, "rejected"),
		listeners:  listeners.WithLabelValues(name),
	}
}
