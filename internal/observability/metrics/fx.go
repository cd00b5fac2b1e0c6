package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func provide() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

// Module registers core counters on the default registry.
var Module = fx.Module("observability.metrics",
	fx.Provide(provide),
)
