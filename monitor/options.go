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

package monitor

import "time"

type Options func(*Monitor)

// WithInterval waits interval between two cycles, zero runs them back to
// back.
func WithInterval(interval time.Duration) Options {
	return func(m *Monitor) {
		m.interval = interval
	}
}

// WithSchedule drives cycles from a cron spec instead of an interval. The
// seconds field is optional and descriptors such as "@every 2s" are
// accepted.
func WithSchedule(spec string) Options {
	return func(m *Monitor) {
		m.spec = spec
	}
}

// WithCycles stops the monitor after n cycles, zero runs until stopped.
func WithCycles(n int) Options {
	return func(m *Monitor) {
		m.limit = n
	}
}

// WithErrorHandler is called with the error of every failed cycle, from the
// monitor goroutine.
func WithErrorHandler(fn func(err error)) Options {
	return func(m *Monitor) {
		m.onError = fn
	}
}
