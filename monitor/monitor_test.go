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

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/context"
)

func TestMain(m *testing.M) {
	// ants starts its default pool at init, its purge loop outlives every test
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("github.com/panjf2000/ants.(*Pool).periodicallyPurge"))
}

func waitDone(t *testing.T, m *Monitor) {
	t.Helper()

	select {
	case <-m.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not finish")
	}
}

func TestNewMonitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	testCases := []struct {
		name     string
		notifier *mocks.MockNotifier
		opts     []Options
		wantErr  error
	}{
		{
			name:     "nil notifier",
			notifier: nil,
			wantErr:  errorx.ErrNilNotifier,
		},
		{
			name:     "negative interval",
			notifier: notifier,
			opts:     []Options{WithInterval(-time.Second)},
			wantErr:  errorx.ErrInvalidInterval,
		},
		{
			name:     "negative cycles",
			notifier: notifier,
			opts:     []Options{WithCycles(-1)},
			wantErr:  errorx.ErrInvalidCycles,
		},
		{
			name:     "seconds schedule",
			notifier: notifier,
			opts:     []Options{WithSchedule("*/5 * * * * *")},
		},
		{
			name:     "descriptor schedule",
			notifier: notifier,
			opts:     []Options{WithSchedule("@every 2s")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				m   *Monitor
				err error
			)
			if tc.notifier == nil {
				m, err = NewMonitor(nil, nil, tc.opts...)
			} else {
				m, err = NewMonitor(tc.notifier, nil, tc.opts...)
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}

	_, err := NewMonitor(notifier, nil, WithSchedule("not a schedule"))
	assert.Error(t, err)
}

func TestMonitor_Cycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify().Return(nil).Times(5)

	m, err := NewMonitor(notifier, nil, WithCycles(5))
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	waitDone(t, m)

	stats := m.Stats()
	assert.Equal(t, 5, stats.Cycles)
	assert.Zero(t, stats.Failures)
	assert.NoError(t, stats.LastError)
	assert.False(t, stats.LastCycle.IsZero())
	assert.False(t, m.Running())

	m.Stop()
	assert.ErrorIs(t, m.Start(context.Background()), errorx.ErrMonitorStopped)
}

func TestMonitor_FinishReleasesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify().Return(nil).Times(2)

	parent, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, err := NewMonitor(notifier, nil, WithCycles(2))
	require.NoError(t, err)
	require.NoError(t, m.Start(parent))
	waitDone(t, m)

	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
	assert.NoError(t, parent.Err())
}

func TestMonitor_Interval(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify().Return(nil).Times(3)

	m, err := NewMonitor(notifier, nil, WithInterval(5*time.Millisecond), WithCycles(3))
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, m.Start(context.Background()))
	waitDone(t, m)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	assert.Equal(t, 3, m.Stats().Cycles)
}

func TestMonitor_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify().Return(nil).Times(2)

	m, err := NewMonitor(notifier, nil, WithSchedule("@every 10ms"), WithCycles(2))
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	waitDone(t, m)
	assert.Equal(t, 2, m.Stats().Cycles)
}

func TestMonitor_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	boom := errors.New("boom")
	gomock.InOrder(
		notifier.EXPECT().Notify().Return(boom),
		notifier.EXPECT().Notify().Return(nil),
		notifier.EXPECT().Notify().Return(boom),
	)

	var handled atomic.Int32
	m, err := NewMonitor(notifier, nil, WithCycles(3), WithErrorHandler(func(err error) {
		assert.ErrorIs(t, err, boom)
		handled.Add(1)
	}))
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	waitDone(t, m)

	stats := m.Stats()
	assert.Equal(t, 3, stats.Cycles)
	assert.Equal(t, 2, stats.Failures)
	assert.ErrorIs(t, stats.LastError, boom)
	assert.Equal(t, int32(2), handled.Load())
}

func TestMonitor_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify().Return(nil).AnyTimes()

	m, err := NewMonitor(notifier, nil, WithInterval(time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	assert.ErrorIs(t, m.Start(context.Background()), errorx.ErrMonitorRunning)
	assert.True(t, m.Running())

	time.Sleep(10 * time.Millisecond)
	m.Stop()
	waitDone(t, m)
	assert.False(t, m.Running())

	// Stop is idempotent.
	m.Stop()
}

func TestMonitor_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify().Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	m, err := NewMonitor(notifier, nil)
	require.NoError(t, err)
	require.NoError(t, m.Start(ctx))

	cancel()
	waitDone(t, m)
	m.Stop()
}

func TestMonitor_StopIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, err := NewMonitor(mocks.NewMockNotifier(ctrl), nil)
	require.NoError(t, err)

	m.Stop()
	waitDone(t, m)
	assert.ErrorIs(t, m.Start(context.Background()), errorx.ErrMonitorStopped)
}
