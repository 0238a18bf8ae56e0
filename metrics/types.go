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
	"time"

	"github.com/TimeWtr/Beacon"
)

// Collector 通知引擎的指标采集接口
type Collector interface {
	CollectSwitcher(enable bool) // 采集器开关
	CycleMetrics
	DeliveryMetrics
	SubscriberMetrics
}

// CycleMetrics 通知周期指标
type CycleMetrics interface {
	// ObserveCycle 一次Notify的协议、投递失败数和耗时
	ObserveCycle(protocol beacon.Protocol, failures int, latency time.Duration)
}

// DeliveryMetrics 单次投递指标
type DeliveryMetrics interface {
	ObserveDelivery(protocol beacon.Protocol, result beacon.DeliveryResult)
}

// SubscriberMetrics 订阅者数量
type SubscriberMetrics interface {
	ObserveSubscribers(protocol beacon.Protocol, count int)
}

var _ Collector = Nop{}

// Nop 不采集任何指标，作为默认采集器
type Nop struct{}

func (Nop) CollectSwitcher(bool)                                   {}
func (Nop) ObserveCycle(beacon.Protocol, int, time.Duration)       {}
func (Nop) ObserveDelivery(beacon.Protocol, beacon.DeliveryResult) {}
func (Nop) ObserveSubscribers(beacon.Protocol, int)                {}
