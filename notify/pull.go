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
	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/resource"
	"go.uber.org/multierr"
)

var _ Subject[PullObserver] = (*PullSubject)(nil)

// PullSubject signals its subscribers once per cycle. Each one walks the
// same frozen SnapshotView and renders what it reads, so two observers may
// sample and format the same resources differently.
type PullSubject struct {
	*engine[PullObserver]
}

func NewPullSubject(registry *resource.Registry, opts ...Options) *PullSubject {
	return &PullSubject{
		engine: newEngine[PullObserver](beacon.PullProtocol, registry, newOptions(opts)),
	}
}

// Notify runs one cycle, failures are isolated and combined as in
// PushSubject.Notify.
func (p *PullSubject) Notify() error {
	observers, start := p.begin()
	var (
		errs     error
		failures int
	)
	defer func() { p.end(start, len(observers), failures) }()

	view := newSnapshotView(p.registry.Entries())
	defer view.expire()

	for idx, observer := range observers {
		err := p.deliver(idx, "", func() error {
			return observer.OnReady(view)
		})
		if err != nil {
			failures++
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}
