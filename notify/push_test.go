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

package notify_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/metrics"
	"github.com/TimeWtr/Beacon/mocks"
	"github.com/TimeWtr/Beacon/notify"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
)

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) Write(message string) error {
	args := m.Called(message)
	return args.Error(0)
}

func newPushSubject(t *testing.T, r *resource.Registry, opts ...notify.Options) *notify.PushSubject {
	t.Helper()

	s, err := notify.NewPushSubject(r, opts...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestPushSubject_DeliveryCompleteness(t *testing.T) {
	s := newPushSubject(t, newRegistry(t))
	a, b := &recorder{}, &recorder{}
	s.Subscribe(a)
	s.Subscribe(b)

	require.NoError(t, s.Notify())
	assert.Equal(t, cycleMessages, a.got())
	assert.Equal(t, cycleMessages, b.got())
}

func TestPushSubject_ProducerMajorOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockPushObserver(ctrl)
	b := mocks.NewMockPushObserver(ctrl)

	gomock.InOrder(
		a.EXPECT().Write(cycleMessages[0]).Return(nil),
		b.EXPECT().Write(cycleMessages[0]).Return(nil),
		a.EXPECT().Write(cycleMessages[1]).Return(nil),
		b.EXPECT().Write(cycleMessages[1]).Return(nil),
	)

	s := newPushSubject(t, newRegistry(t))
	s.Subscribe(a)
	s.Subscribe(b)
	assert.NoError(t, s.Notify())
}

func TestPushSubject_DuplicateSubscribe(t *testing.T) {
	obs := new(MockObserver)
	obs.On("Write", mock.Anything).Return(nil)

	s := newPushSubject(t, newRegistry(t))
	s.Subscribe(obs)
	s.Subscribe(obs)
	assert.Equal(t, 1, s.Subscribers())

	require.NoError(t, s.Notify())
	obs.AssertNumberOfCalls(t, "Write", len(cycleMessages))
	obs.AssertCalled(t, "Write", cycleMessages[0])
	obs.AssertCalled(t, "Write", cycleMessages[1])
}

func TestPushSubject_IdempotentUnsubscribe(t *testing.T) {
	s := newPushSubject(t, newRegistry(t))
	member, stranger := &recorder{}, &recorder{}
	s.Subscribe(member)

	s.Unsubscribe(stranger)
	s.Unsubscribe(stranger)
	assert.Equal(t, 1, s.Subscribers())

	s.Unsubscribe(member)
	s.Unsubscribe(member)
	assert.Equal(t, 0, s.Subscribers())

	require.NoError(t, s.Notify())
	assert.Empty(t, member.got())
}

func TestPushSubject_FailureIsolation(t *testing.T) {
	s := newPushSubject(t, newRegistry(t))
	broken := &recorder{err: errorx.ErrSinkClosed}
	healthy := &recorder{}
	s.Subscribe(broken)
	s.Subscribe(healthy)

	err := s.Notify()
	require.Error(t, err)
	assert.ErrorIs(t, err, errorx.ErrSinkClosed)
	assert.Equal(t, cycleMessages, healthy.got())

	failures := multierr.Errors(err)
	require.Len(t, failures, 2)
	for i, failure := range failures {
		var de *errorx.DeliveryError
		require.True(t, errors.As(failure, &de))
		assert.Equal(t, "push", de.Protocol)
		assert.Equal(t, 0, de.Index)
		assert.Equal(t, []string{"CPU", "Disk"}[i], de.Resource)
	}

	assert.Equal(t, 2, s.Subscribers(), "failures do not touch the observer set")
	assert.Equal(t, beacon.IdleState, s.State())
}

type panicking struct{}

func (panicking) Write(string) error { panic("boom") }

func TestPushSubject_PanicIsolation(t *testing.T) {
	s := newPushSubject(t, newRegistry(t))
	healthy := &recorder{}
	s.Subscribe(&panicking{})
	s.Subscribe(healthy)

	err := s.Notify()
	assert.ErrorIs(t, err, errorx.ErrObserverPanic)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, cycleMessages, healthy.got())

	// the cycle lock was released
	assert.Error(t, s.Notify())
}

func TestPushSubject_EmptyRegistry(t *testing.T) {
	s := newPushSubject(t, resource.NewRegistry())
	obs := &recorder{}
	s.Subscribe(obs)

	assert.NoError(t, s.Notify())
	assert.Empty(t, obs.got())
}

func TestPushSubject_SubscriptionVisibleFromNextCycle(t *testing.T) {
	s := newPushSubject(t, newRegistry(t))
	late := &recorder{}
	reentrant := &reentrantWriter{subject: s, late: late}
	s.Subscribe(reentrant)

	require.NoError(t, s.Notify())
	assert.Empty(t, late.got(), "subscribed mid-cycle, not delivered in that cycle")
	assert.Equal(t, beacon.NotifyingState, reentrant.state)

	require.NoError(t, s.Notify())
	assert.Equal(t, cycleMessages, late.got())
	assert.Equal(t, beacon.IdleState, s.State())
}

type reentrantWriter struct {
	subject *notify.PushSubject
	late    *recorder
	state   beacon.State
}

func (r *reentrantWriter) Write(string) error {
	r.state = r.subject.State()
	r.subject.Subscribe(r.late)
	return nil
}

func TestPushSubject_ParallelSamplingKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resource.NewRegistry()
	var want []string
	for i := 0; i < 8; i++ {
		p := mocks.NewMockProducer(ctrl)
		p.EXPECT().Get().Return(float64(i)).Times(3)
		p.EXPECT().Unit().Return("u").Times(3)
		name := fmt.Sprintf("res-%d", i)
		require.NoError(t, r.Add(name, p))
		want = append(want, notify.Format(name, float64(i), "u"))
	}

	s := newPushSubject(t, r, notify.WithSamplingWorkers(4))
	obs := &recorder{}
	s.Subscribe(obs)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Notify())
	}
	got := obs.got()
	require.Len(t, got, 24)
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, got[i*8:(i+1)*8])
	}
}

func TestPushSubject_Collector(t *testing.T) {
	mc := metrics.NewPrometheus(prometheus.NewRegistry())
	s := newPushSubject(t, newRegistry(t), notify.WithCollector(mc))
	s.Subscribe(&recorder{})
	s.Subscribe(&recorder{err: errors.New("disk full")})

	assert.Error(t, s.Notify())

	expected := `
# HELP beacon_deliveries_total Number of observer deliveries by result.
# TYPE beacon_deliveries_total counter
beacon_deliveries_total{protocol="push",result="failure"} 2
beacon_deliveries_total{protocol="push",result="success"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(mc.Registry(), stringsReader(expected), "beacon_deliveries_total"))
}

// Concurrent subscribe, unsubscribe and notify never lose or duplicate a
// delivery: every observer only ever sees whole cycles.
func TestPushSubject_ConcurrentMutation(t *testing.T) {
	const (
		observers = 20
		notifiers = 5
		cycles    = 20
	)

	s := newPushSubject(t, newRegistry(t))
	pool := make([]*recorder, observers)
	for i := range pool {
		pool[i] = &recorder{}
	}

	var wg sync.WaitGroup
	for i := 0; i < observers; i++ {
		wg.Add(1)
		go func(o *recorder) {
			defer wg.Done()
			for j := 0; j < cycles; j++ {
				s.Subscribe(o)
				s.Subscribe(o)
				s.Unsubscribe(o)
			}
			s.Subscribe(o)
		}(pool[i])
	}
	for i := 0; i < notifiers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < cycles; j++ {
				assert.NoError(t, s.Notify())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, observers, s.Subscribers())
	require.NoError(t, s.Notify())
	for _, o := range pool {
		got := o.got()
		require.NotEmpty(t, got)
		require.Zero(t, len(got)%len(cycleMessages))
		for i := 0; i < len(got); i += len(cycleMessages) {
			assert.Equal(t, cycleMessages, got[i:i+len(cycleMessages)])
		}
	}
}
