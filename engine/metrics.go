package engine

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// frameMetrics exposes the two observability scalars from §6 plus the
// worker pool's shape, registered into a caller-supplied Registerer the
// same way luxfi-consensus/protocol/prism/set.go registers its poll
// gauges and subculture-collective-reddit-cluster-map/backend/internal/metrics
// registers its collector output.
type frameMetrics struct {
	buildTime prometheus.Gauge
	accelTime prometheus.Gauge
	poolSize  prometheus.Gauge
}

func newFrameMetrics(reg prometheus.Registerer) (*frameMetrics, error) {
	m := &frameMetrics{
		buildTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barnes_hut_build_time_seconds",
			Help: "Wall-clock time of the most recent tree-build phase.",
		}),
		accelTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barnes_hut_accel_time_seconds",
			Help: "Wall-clock time of the most recent acceleration+integration phases.",
		}),
		poolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barnes_hut_worker_pool_size",
			Help: "Number of persistent acceleration workers (1 means the inline path is used).",
		}),
	}
	for _, c := range []prometheus.Collector{m.buildTime, m.accelTime, m.poolSize} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
		}
	}
	return m, nil
}
