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

package metrics

import (
	"net/http"
	"time"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/utils/atomicx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "beacon"

var _ Collector = (*Prometheus)(nil)

type Prometheus struct {
	enabled       *atomicx.Bool          // 是否开启指标采集
	cycles        *prometheus.CounterVec // 通知周期总数
	cycleFailures *prometheus.CounterVec // 含失败投递的通知周期数
	cycleLatency  *prometheus.HistogramVec
	deliveries    *prometheus.CounterVec // 按结果统计的投递次数
	subscribers   *prometheus.GaugeVec   // 当前订阅者数量
	registry      *prometheus.Registry
}

// NewPrometheus registers the engine metrics on registry, a nil registry
// gets a private one.
func NewPrometheus(registry *prometheus.Registry) *Prometheus {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	p := &Prometheus{
		enabled:  atomicx.NewBool(),
		registry: registry,
	}
	p.enabled.Store(true)
	return p.register()
}

func (p *Prometheus) register() *Prometheus {
	p.cycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notify_cycles_total",
		Help:      "Number of notification cycles.",
	}, []string{"protocol"})

	p.cycleFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notify_failed_cycles_total",
		Help:      "Number of notification cycles with at least one failed delivery.",
	}, []string{"protocol"})

	p.cycleLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notify_cycle_seconds",
		Help:      "Latency of notification cycles.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"protocol"})

	p.deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_total",
		Help:      "Number of observer deliveries by result.",
	}, []string{"protocol", "result"})

	p.subscribers = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers",
		Help:      "Number of subscribed observers.",
	}, []string{"protocol"})

	p.registry.MustRegister(p.cycles, p.cycleFailures, p.cycleLatency, p.deliveries, p.subscribers)
	return p
}

// Handler 返回HTTP处理器用于对接各种框架
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

func (p *Prometheus) CollectSwitcher(enable bool) {
	p.enabled.Store(enable)
}

func (p *Prometheus) ObserveCycle(protocol beacon.Protocol, failures int, latency time.Duration) {
	if !p.enabled.Load() {
		return
	}

	p.cycles.WithLabelValues(protocol.String()).Inc()
	if failures > 0 {
		p.cycleFailures.WithLabelValues(protocol.String()).Inc()
	}
	p.cycleLatency.WithLabelValues(protocol.String()).Observe(latency.Seconds())
}

func (p *Prometheus) ObserveDelivery(protocol beacon.Protocol, result beacon.DeliveryResult) {
	if !p.enabled.Load() {
		return
	}

	p.deliveries.WithLabelValues(protocol.String(), result.String()).Inc()
}

func (p *Prometheus) ObserveSubscribers(protocol beacon.Protocol, count int) {
	if !p.enabled.Load() {
		return
	}

	p.subscribers.WithLabelValues(protocol.String()).Set(float64(count))
}
