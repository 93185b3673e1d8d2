package relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alwx",
		Subsystem: "relay",
		Name:      "deliveries_total",
		Help:      "Relay attempts by route and outcome.",
	}, []string{"route", "outcome"})

	deliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alwx",
		Subsystem: "relay",
		Name:      "delivery_duration_seconds",
		Help:      "Duration of outbound webhook calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

func observe(res *Result) {
	deliveriesTotal.WithLabelValues(res.Route, string(res.Outcome)).Inc()
	if res.Outcome != OutcomeSkipped {
		deliveryDuration.WithLabelValues(res.Route).Observe(res.Duration.Seconds())
	}
}
