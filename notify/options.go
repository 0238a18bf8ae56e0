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

package notify

import (
	"github.com/TimeWtr/Beacon/metrics"
	"github.com/TimeWtr/Beacon/utils/log"
)

type options struct {
	l       log.Logger
	mc      metrics.Collector
	workers int
}

type Options func(*options)

func WithLogger(l log.Logger) Options {
	return func(o *options) {
		if l != nil {
			o.l = l
		}
	}
}

// WithCollector reports cycle, delivery and subscriber metrics to mc.
func WithCollector(mc metrics.Collector) Options {
	return func(o *options) {
		if mc != nil {
			o.mc = mc
		}
	}
}

// WithSamplingWorkers lets a PushSubject sample producers on a pool of n
// workers. Messages are still rendered and delivered in registry order.
// Zero keeps sampling sequential, PullSubject ignores it.
func WithSamplingWorkers(n int) Options {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Options) options {
	o := options{
		l:  log.Nop(),
		mc: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
