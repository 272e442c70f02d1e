package translate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wordtree_translate_requests_total",
	Help: "Number of lookup requests sent to translation and dictionary services",
}, []string{"service", "result"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "wordtree_translate_request_duration_seconds",
	Help:    "Duration of lookup requests, including retries",
	Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
}, []string{"service"})
