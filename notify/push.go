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
	"sync"
	"time"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/panjf2000/ants"
	"go.uber.org/multierr"
)

const samplingExpireDuration = 60 * time.Second

var _ Subject[PushObserver] = (*PushSubject)(nil)

// PushSubject samples every producer once per cycle, renders one message per
// producer and writes each message to every subscriber.
type PushSubject struct {
	*engine[PushObserver]
	pool *ants.Pool
}

func NewPushSubject(registry *resource.Registry, opts ...Options) (*PushSubject, error) {
	o := newOptions(opts)
	p := &PushSubject{
		engine: newEngine[PushObserver](beacon.PushProtocol, registry, o),
	}

	if o.workers > 0 {
		pool, err := ants.NewPool(o.workers,
			ants.WithExpiryDuration(samplingExpireDuration),
			ants.WithPreAlloc(true),
			ants.WithNonblocking(true))
		if err != nil {
			return nil, err
		}
		p.pool = pool
	}

	return p, nil
}

type message struct {
	resource string
	text     string
}

// Notify runs one cycle. Messages go out producer by producer, so every
// observer sees them in registry order. A failing observer does not stop
// the cycle: all failures are returned combined, multierr.Errors splits
// them into *errorx.DeliveryError values.
func (p *PushSubject) Notify() error {
	observers, start := p.begin()
	var (
		errs     error
		failures int
	)
	defer func() { p.end(start, len(observers), failures) }()

	for _, msg := range p.render() {
		for idx, observer := range observers {
			err := p.deliver(idx, msg.resource, func() error {
				return observer.Write(msg.text)
			})
			if err != nil {
				failures++
				errs = multierr.Append(errs, err)
			}
		}
	}

	return errs
}

func (p *PushSubject) render() []message {
	entries := p.registry.Entries()
	values := p.sample(entries)

	messages := make([]message, len(entries))
	for i, e := range entries {
		messages[i] = message{
			resource: e.Name,
			text:     Format(e.Name, values[i], e.Producer.Unit()),
		}
	}
	return messages
}

func (p *PushSubject) sample(entries []resource.Entry) []float64 {
	values := make([]float64, len(entries))
	if p.pool == nil || len(entries) < 2 {
		for i, e := range entries {
			values[i] = e.Producer.Get()
		}
		return values
	}

	var (
		wg        sync.WaitGroup
		once      sync.Once
		recovered any
	)
	wg.Add(len(entries))
	for i := range entries {
		task := func() {
			defer wg.Done()
			// re-raised after Wait, as on the inline path
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { recovered = r })
				}
			}()
			values[i] = entries[i].Producer.Get()
		}
		// the pool is non-blocking, sample inline when it is saturated
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	if recovered != nil {
		panic(recovered)
	}
	return values
}

// Close releases the sampling pool. The subject must not be notified
// afterwards.
func (p *PushSubject) Close() {
	if p.pool != nil {
		p.pool.Release()
	}
}
