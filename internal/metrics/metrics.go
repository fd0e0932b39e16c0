// Package metrics регистрирует prometheus-коллекторы для вызовов удалённого API.
// Сами метрики отдаются приложением на /metrics через promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения метки outcome.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// RemoteAPIRequests счётчик запросов к удалённому API по методу, маршруту и исходу.
var RemoteAPIRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "rosteradmin",
		Subsystem: "remote_api",
		Name:      "requests_total",
		Help:      "Number of requests sent to the remote roster API.",
	},
	[]string{"method", "route", "outcome"},
)

// RemoteAPIDuration гистограмма длительности запросов к удалённому API.
var RemoteAPIDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "rosteradmin",
		Subsystem: "remote_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests to the remote roster API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
