package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FetchAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_attempts_total",
			Help: "HTTP attempts against store search APIs, by outcome kind",
		},
		[]string{"kind"},
	)

	PriceLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_lookups_total",
			Help: "Store lookups per SKU, by store and outcome (found/absent)",
		},
		[]string{"store", "outcome"},
	)

	ReportRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_rows_total",
			Help: "Rows written to the price comparison report, by store",
		},
		[]string{"store"},
	)
)

// Register registra os coletores em reg. Start usa o registry padrão.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(FetchAttempts, PriceLookups, ReportRows)
}

// Start expõe /metrics em background. Sem porta, nada é servido.
func Start(port string) {
	Register(prometheus.DefaultRegisterer)
	if port == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
