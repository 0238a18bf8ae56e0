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

// Package monitor drives a notifier: one Notify per tick of an interval or
// cron schedule, for a fixed number of cycles or until stopped.
package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/notify"
	"github.com/TimeWtr/Beacon/utils/atomicx"
	"github.com/TimeWtr/Beacon/utils/log"
	"github.com/robfig/cron/v3"
	"golang.org/x/net/context"
)

type state int32

const (
	idleState state = iota
	runningState
	stoppedState
)

var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Stats is a point in time copy of the monitor counters.
type Stats struct {
	Cycles    int       // 已执行的通知周期
	Failures  int       // 返回错误的通知周期
	LastError error     // 最近一次失败的错误
	LastCycle time.Time // 最近一次周期的结束时间
}

type Monitor struct {
	notifier   notify.Notifier
	l          log.Logger
	interval   time.Duration
	spec       string
	schedule   cron.Schedule
	limit      int
	onError    func(err error)
	state      *atomicx.Value[state]
	mu         sync.Mutex // 保护状态切换
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	done       chan struct{}
	doneOnce   sync.Once
	statsMu    sync.Mutex
	stats      Stats
}

func NewMonitor(notifier notify.Notifier, l log.Logger, opts ...Options) (*Monitor, error) {
	if notifier == nil {
		return nil, errorx.ErrNilNotifier
	}
	if l == nil {
		l = log.Nop()
	}

	m := &Monitor{
		notifier: notifier,
		l:        l,
		state:    atomicx.NewValue(idleState),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.interval < 0 {
		return nil, errorx.ErrInvalidInterval
	}
	if m.limit < 0 {
		return nil, errorx.ErrInvalidCycles
	}
	if m.spec != "" {
		schedule, err := parser.Parse(m.spec)
		if err != nil {
			return nil, fmt.Errorf("parse schedule %q: %w", m.spec, err)
		}
		m.schedule = schedule
	}

	return m, nil
}

// Start runs the cycles on a new goroutine until the limit is reached, ctx
// is done or Stop is called. A monitor runs at most once.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state.Load() {
	case runningState:
		return errorx.ErrMonitorRunning
	case stoppedState:
		return errorx.ErrMonitorStopped
	default:
	}

	m.ctx, m.cancelFunc = context.WithCancel(ctx)
	m.state.Store(runningState)
	m.wg.Add(1)
	go m.run(m.ctx, m.cancelFunc)

	return nil
}

// Stop cancels the run and waits for the in-flight cycle to return.
func (m *Monitor) Stop() {
	m.mu.Lock()
	prev := m.state.Swap(stoppedState)
	if prev == runningState {
		m.cancelFunc()
	}
	m.mu.Unlock()

	if prev == idleState {
		m.closeDone()
	}
	m.wg.Wait()
}

// Done is closed once the monitor stopped running.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

func (m *Monitor) Running() bool {
	return m.state.Load() == runningState
}

func (m *Monitor) Stats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()

	return m.stats
}

func (m *Monitor) closeDone() {
	m.doneOnce.Do(func() { close(m.done) })
}

func (m *Monitor) run(ctx context.Context, cancel context.CancelFunc) {
	defer m.wg.Done()
	defer m.closeDone()
	defer cancel()
	defer m.state.Store(stoppedState)

	m.l.Info("monitor started",
		log.DurationField("interval", m.interval),
		log.StringField("schedule", m.spec),
		log.IntField("cycles", m.limit))

	var ticker *time.Ticker
	if m.schedule == nil && m.interval > 0 {
		ticker = time.NewTicker(m.interval)
		defer ticker.Stop()
	}

	count := 0
	for m.limit == 0 || count < m.limit {
		if !m.wait(ctx, ticker) {
			m.l.Info("monitor stopped", log.IntField("cycles", count), log.ErrorField(ctx.Err()))
			return
		}
		m.cycle()
		count++
	}

	m.l.Info("monitor finished", log.IntField("cycles", count))
}

// wait blocks until the next cycle is due, false means ctx is done.
func (m *Monitor) wait(ctx context.Context, ticker *time.Ticker) bool {
	switch {
	case m.schedule != nil:
		timer := time.NewTimer(time.Until(m.schedule.Next(time.Now())))
		defer timer.Stop()

		select {
		case <-timer.C:
			return true
		case <-ctx.Done():
			return false
		}
	case ticker != nil:
		select {
		case <-ticker.C:
			return true
		case <-ctx.Done():
			return false
		}
	default:
		return ctx.Err() == nil
	}
}

func (m *Monitor) cycle() {
	err := m.notifier.Notify()

	m.statsMu.Lock()
	m.stats.Cycles++
	m.stats.LastCycle = time.Now()
	if err != nil {
		m.stats.Failures++
		m.stats.LastError = err
	}
	m.statsMu.Unlock()

	if err == nil {
		return
	}
	m.l.Error("notify cycle failed", log.ErrorField(err))
	if m.onError != nil {
		m.onError(err)
	}
}
