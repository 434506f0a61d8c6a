package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "revisaai", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "revisaai", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	// RemoteRequests counts backend calls made by the REST client. outcome is ok, http_error or transport_error.
	RemoteRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "revisaai", Name: "remote_requests_total", Help: "Requests issued by the REST client by method and outcome."},
		[]string{"method", "outcome"},
	)
	GatewayFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "revisaai", Name: "gateway_fallbacks_total", Help: "Operations served by the mock store after a remote failure."},
		[]string{"resource", "operation"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(RemoteRequests)
	reg.MustRegister(GatewayFallbacks)
}
