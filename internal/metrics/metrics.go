// Package metrics keeps in-process counters for the BMI service and exposes
// them in the Prometheus text format.
//
// Counters only grow for the life of the process; nothing is persisted.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"

	"github.com/yusufkecer/bmi-calculator-backend/internal/domain"
)

const (
	calculationsName = "bmi_calculations_total"
	rejectionsName   = "bmi_rejections_total"
	httpRequestsName = "bmi_http_requests_total"
)

// Registry wraps a private prometheus.Registry, not the global default.
type Registry struct {
	reg          *prometheus.Registry
	handler      http.Handler
	calculations *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: calculationsName,
			Help: "Successful BMI calculations by category.",
		}, []string{"category"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: rejectionsName,
			Help: "BMI requests rejected by validation, by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: httpRequestsName,
			Help: "HTTP requests served, by method and status code.",
		}, []string{"method", "code"}),
	}
	r.reg.MustRegister(r.calculations, r.rejections, r.httpRequests)
	r.handler = promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
	return r
}

func (r *Registry) ObserveResult(res domain.BMIResult) {
	r.calculations.WithLabelValues(res.Category.String()).Inc()
}

func (r *Registry) ObserveRejection(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}

func (r *Registry) ObserveHTTP(method string, status int) {
	r.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func (r *Registry) Calculations(c domain.Category) float64 {
	return r.counterValue(calculationsName, "category", c.String())
}

func (r *Registry) Rejections(reason string) float64 {
	return r.counterValue(rejectionsName, "reason", reason)
}

// Gather returns every family with at least one sample.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.reg.Gather()
}

func (r *Registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// counterValue reads a sample from a gather so lookups never create empty
// series in the exposition.
func (r *Registry) counterValue(name, label, value string) float64 {
	mfs, err := r.reg.Gather()
	if err != nil {
		return 0
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
