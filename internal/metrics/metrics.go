package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bulletin_http_requests_total",
	Help: "HTTP requests processed, partitioned by method and status code.",
}, []string{"method", "code"})

// Instrument counts every request passing through it.
func Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(requestsTotal, next)
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
