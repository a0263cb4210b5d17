// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the registry served by the HTTP layer
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// HTTPRequests counts handled requests by route template and status
	HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "outfique",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// WeatherLookups counts provider lookups; outcome is live or fallback
	WeatherLookups = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "outfique",
		Name:      "weather_lookups_total",
		Help:      "Weather lookups by outcome.",
	}, []string{"outcome"})

	// WardrobeMutations counts add/delete calls against the store
	WardrobeMutations = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "outfique",
		Name:      "wardrobe_mutations_total",
		Help:      "Wardrobe add and delete operations by result.",
	}, []string{"op", "result"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Result maps an error to the result label
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
