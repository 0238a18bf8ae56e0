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
	"slices"
	"sync"
)

// observerSet is an identity set kept in subscription order.
type observerSet[T comparable] struct {
	mu      sync.Mutex
	members []T
}

func (s *observerSet[T]) add(o T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.members, o) {
		return false
	}
	s.members = append(s.members, o)
	return true
}

func (s *observerSet[T]) remove(o T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.members, o)
	if idx < 0 {
		return false
	}
	s.members = slices.Delete(s.members, idx, idx+1)
	return true
}

// snapshot copies the members, later mutations do not affect the copy.
func (s *observerSet[T]) snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.members)
}

func (s *observerSet[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.members)
}
