package common

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by route, method and code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contentshop",
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"route", "method", "code"})

	// RequestDuration observes request latency by route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "contentshop",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	// OrdersCompleted counts orders whose payment finished, by outcome.
	OrdersCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contentshop",
		Name:      "orders_completed_total",
		Help:      "Checkout outcomes.",
	}, []string{"outcome"})
)
