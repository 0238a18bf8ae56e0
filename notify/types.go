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

// Package notify fans resource snapshots out to observers, either by pushing
// rendered messages or by signalling pull observers that a snapshot is ready.
package notify

import (
	"iter"

	"github.com/TimeWtr/Beacon/resource"
)

//go:generate mockgen -source=types.go -destination=../mocks/notify_mock.go -package=mocks

// PushObserver receives every rendered message of a cycle.
type PushObserver interface {
	Write(message string) error
}

// PullObserver is told once per cycle that a snapshot is ready and renders
// it itself. The view is only valid until OnReady returns.
type PullObserver interface {
	OnReady(view SnapshotView) error
}

// SnapshotView is the read-only registry access handed to pull observers.
type SnapshotView interface {
	All() iter.Seq2[string, resource.Producer]
	Len() int
	// Err reports errorx.ErrViewExpired once the cycle that created the
	// view has ended.
	Err() error
}

// Notifier runs one notification cycle.
type Notifier interface {
	Notify() error
}

// Subject is implemented by PushSubject and PullSubject. Observers are
// identified by ==, so they must be comparable, in practice pointers.
type Subject[T comparable] interface {
	Notifier
	Subscribe(observer T)
	Unsubscribe(observer T)
	Subscribers() int
}
