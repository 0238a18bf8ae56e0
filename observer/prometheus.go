// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package observer

import (
	"github.com/TimeWtr/Beacon/notify"
	"github.com/prometheus/client_golang/prometheus"
)

var _ notify.PullObserver = (*Prometheus)(nil)

// Prometheus exports the latest sample of every resource as a gauge. It is
// a pull observer only, a rendered message carries nothing a gauge can use.
type Prometheus struct {
	utilization *prometheus.GaugeVec
	samples     *prometheus.CounterVec
	registry    *prometheus.Registry
}

func NewPrometheus(registry *prometheus.Registry) *Prometheus {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	p := &Prometheus{
		registry: registry,
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "beacon",
			Name:      "resource_utilization",
			Help:      "Latest sampled value of a resource.",
		}, []string{"resource", "unit"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beacon",
			Name:      "resource_samples_total",
			Help:      "Number of samples taken per resource.",
		}, []string{"resource"}),
	}
	registry.MustRegister(p.utilization, p.samples)

	return p
}

func (p *Prometheus) OnReady(view notify.SnapshotView) error {
	for name, producer := range view.All() {
		p.utilization.WithLabelValues(name, producer.Unit()).Set(producer.Get())
		p.samples.WithLabelValues(name).Inc()
	}
	return nil
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
