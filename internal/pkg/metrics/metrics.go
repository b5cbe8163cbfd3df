package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type StoreMetrics struct {
	Requests      *prometheus.CounterVec
	OrdersCreated prometheus.Counter
	CartActions   *prometheus.CounterVec
}

func NewStoreMetrics() *StoreMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "migles",
		Subsystem: "store",
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP.",
	}, []string{"handler", "status"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "migles",
		Subsystem: "store",
		Name:      "orders_created_total",
		Help:      "Total de pedidos criados.",
	})
	cartActions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "migles",
		Subsystem: "store",
		Name:      "cart_actions_total",
		Help:      "Total de mutações do carrinho.",
	}, []string{"action"})

	prometheus.MustRegister(requests, ordersCreated, cartActions)
	return &StoreMetrics{
		Requests:      requests,
		OrdersCreated: ordersCreated,
		CartActions:   cartActions,
	}
}

// Métodos nil-safe: com métricas desligadas os serviços seguem funcionando.

func (m *StoreMetrics) IncRequest(handler, status string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(handler, status).Inc()
}

func (m *StoreMetrics) IncOrderCreated() {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
}

func (m *StoreMetrics) IncCartAction(action string) {
	if m == nil {
		return
	}
	m.CartActions.WithLabelValues(action).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
