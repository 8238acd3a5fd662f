// Package metrics coletores Prometheus da API: requisições HTTP e operações na planilha.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry coletores da aplicação, servidos em /metrics.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fazenda",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requisições HTTP em andamento.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fazenda",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fazenda",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method", "route"},
	)

	sheetOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fazenda",
			Subsystem: "sheets",
			Name:      "operations_total",
			Help:      "Operações de repositório sobre a planilha, por resultado.",
		},
		[]string{"sheet", "op", "result"},
	)

	sheetDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fazenda",
			Subsystem: "sheets",
			Name:      "operation_duration_seconds",
			Help:      "Duração das operações na planilha (inclui espera pelo lock).",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms a ~10s
		},
		[]string{"sheet", "op"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		sheetOps,
		sheetDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expõe os coletores registrados.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marca uma requisição em andamento; chame a função devolvida ao final.
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// ObserveHTTP registra uma requisição concluída. route é o padrão da rota ("/vendas/:id"),
// não o caminho bruto.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveSheetOp registra uma operação de repositório. result é "ok" ou "error".
func ObserveSheetOp(sheet, op string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	sheetOps.WithLabelValues(sheet, op, result).Inc()
	sheetDuration.WithLabelValues(sheet, op).Observe(d.Seconds())
}
