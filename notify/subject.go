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
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/metrics"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/TimeWtr/Beacon/utils/atomicx"
	"github.com/TimeWtr/Beacon/utils/log"
)

// engine is the part shared by both protocols.
//
// Two locks are involved. cycle is held for a whole Notify call so cycles
// never overlap, the observer set has its own lock held only to mutate it
// or to take the snapshot a cycle delivers to. Subscribe and Unsubscribe
// therefore never wait for observer I/O, take effect from the next cycle
// on, and are safe to call from inside an observer callback.
type engine[T comparable] struct {
	protocol  beacon.Protocol
	registry  *resource.Registry
	observers observerSet[T]
	cycle     sync.Mutex
	state     *atomicx.Value[beacon.State]
	l         log.Logger
	mc        metrics.Collector
}

func newEngine[T comparable](protocol beacon.Protocol, registry *resource.Registry, o options) *engine[T] {
	if registry == nil {
		registry = resource.NewRegistry()
	}
	return &engine[T]{
		protocol: protocol,
		registry: registry,
		state:    atomicx.NewValue(beacon.IdleState),
		l:        o.l.With(log.StringField("protocol", protocol.String())),
		mc:       o.mc,
	}
}

// Subscribe adds observer, subscribing the same observer again is a no-op.
// Observers are told apart by identity, so one whose dynamic type cannot be
// compared is rejected.
func (e *engine[T]) Subscribe(observer T) {
	if !identifiable(observer) {
		e.l.Warn("observer rejected, its type is not comparable",
			log.StringField("type", fmt.Sprintf("%T", observer)))
		return
	}

	if e.observers.add(observer) {
		e.mc.ObserveSubscribers(e.protocol, e.observers.len())
	}
}

// Unsubscribe removes observer, unknown observers are ignored.
func (e *engine[T]) Unsubscribe(observer T) {
	if !identifiable(observer) {
		return
	}
	if e.observers.remove(observer) {
		e.mc.ObserveSubscribers(e.protocol, e.observers.len())
	}
}

// identifiable is false for nil observers and for dynamic types that would
// panic under ==.
func identifiable(observer any) bool {
	t := reflect.TypeOf(observer)
	return t != nil && t.Comparable()
}

func (e *engine[T]) Subscribers() int {
	return e.observers.len()
}

func (e *engine[T]) State() beacon.State {
	return e.state.Load()
}

// begin enters a cycle and returns the subscribers it delivers to. Every
// begin must be paired with an end.
func (e *engine[T]) begin() ([]T, time.Time) {
	e.cycle.Lock()
	e.state.Store(beacon.NotifyingState)
	return e.observers.snapshot(), time.Now()
}

func (e *engine[T]) end(start time.Time, observers, failures int) {
	latency := time.Since(start)
	e.state.Store(beacon.IdleState)
	e.cycle.Unlock()

	e.mc.ObserveCycle(e.protocol, failures, latency)
	e.l.Debug("notify cycle finished",
		log.IntField("observers", observers),
		log.IntField("failures", failures),
		log.DurationField("latency", latency))
}

// deliver runs one observer callback, a returned error or a panic becomes a
// *errorx.DeliveryError.
func (e *engine[T]) deliver(index int, name string, fn func() error) (err error) {
	result := beacon.DeliverySuccess
	defer func() {
		if r := recover(); r != nil {
			result = beacon.DeliveryPanic
			err = fmt.Errorf("%w: %v", errorx.ErrObserverPanic, r)
		}
		e.mc.ObserveDelivery(e.protocol, result)
		if err == nil {
			return
		}

		err = &errorx.DeliveryError{
			Protocol: e.protocol.String(),
			Resource: name,
			Index:    index,
			Err:      err,
		}
		e.l.Warn("delivery failed",
			log.StringField("resource", name),
			log.IntField("observer", index),
			log.ErrorField(err))
	}()

	if err = fn(); err != nil {
		result = beacon.DeliveryFailure
	}
	return err
}
