package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameCheckoutSessions = "checkout_sessions"
)

var CheckoutSessions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCheckoutSessions,
		Help:      "Checkout session creations, by result",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)
