package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/v3math/internal/vec"
)

// Reporter считает отказы операций в Prometheus и передает диагностику дальше.
type Reporter struct {
	next     vec.Reporter
	failures *prometheus.CounterVec
}

// NewReporter создает счетчик v3math_failures_total{op,kind} и регистрирует его в reg.
// next может быть nil.
func NewReporter(reg prometheus.Registerer, next vec.Reporter) (*Reporter, error) {
	r := &Reporter{
		next: next,
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "v3math",
			Name:      "failures_total",
			Help:      "Reported vector operation failures by operation and kind.",
		}, []string{"op", "kind"}),
	}

	if reg != nil {
		if err := reg.Register(r.failures); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Report увеличивает счетчик и передает err следующему получателю
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}

	op := "unknown"
	var opErr *vec.OpError
	if errors.As(err, &opErr) {
		op = opErr.Op
	}
	r.failures.WithLabelValues(op, vec.Kind(err)).Inc()

	if r.next != nil {
		r.next.Report(err)
	}
}

// Failures возвращает счетчик для экспорта и проверок
func (r *Reporter) Failures() *prometheus.CounterVec {
	return r.failures
}
