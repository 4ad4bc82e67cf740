package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	LoginAttempts  *prometheus.CounterVec // result: ok / invalid_credentials / validation / ...
	GuardRejects   *prometheus.CounterVec // reason: no_token / invalid_token / invalid_user / forbidden / ...
	AccountsCreate *prometheus.CounterVec // result
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcc",
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		GuardRejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcc",
			Name:      "access_guard_rejections_total",
			Help:      "Requests rejected by the access guard by reason.",
		}, []string{"reason"}),
		AccountsCreate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcc",
			Name:      "account_create_total",
			Help:      "Account creation attempts by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.LoginAttempts,
		m.GuardRejects,
		m.AccountsCreate,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler 暴露 /metrics
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
