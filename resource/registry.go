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

package resource

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/TimeWtr/Beacon/errorx"
)

// Registry maps unique names to producers and iterates them in insertion
// order. Mutating the registry while notification cycles are running is
// outside its contract: cycles started after the mutation see it, a cycle
// that already began iterating does not.
type Registry struct {
	mu      sync.RWMutex
	names   []string
	entries map[string]Producer
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Producer),
	}
}

func (r *Registry) Add(name string, p Producer) error {
	if name == "" {
		return errorx.ErrEmptyName
	}
	if p == nil {
		return fmt.Errorf("add %q: %w", name, errorx.ErrNilProducer)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("the name %q: %w", name, errorx.ErrDuplicateName)
	}
	r.entries[name] = p
	r.names = append(r.names, name)
	return nil
}

func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("the name %q: %w", name, errorx.ErrUnknownName)
	}
	delete(r.entries, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
	return nil
}

func (r *Registry) Get(name string) (Producer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.entries[name]
	return p, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.names)
}

// Entries returns a copy of the registry content in insertion order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.names))
	for _, name := range r.names {
		entries = append(entries, Entry{Name: name, Producer: r.entries[name]})
	}
	return entries
}

// All iterates the registry in insertion order. The content is captured
// when ranging begins, so every range over the returned sequence sees the
// registry as it was at that moment.
func (r *Registry) All() iter.Seq2[string, Producer] {
	return func(yield func(string, Producer) bool) {
		for _, e := range r.Entries() {
			if !yield(e.Name, e.Producer) {
				return
			}
		}
	}
}
