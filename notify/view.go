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
	"iter"

	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/TimeWtr/Beacon/utils/atomicx"
)

var _ SnapshotView = (*snapshotView)(nil)

// snapshotView freezes the registry content for one pull cycle.
type snapshotView struct {
	entries []resource.Entry
	expired *atomicx.Bool
}

func newSnapshotView(entries []resource.Entry) *snapshotView {
	return &snapshotView{
		entries: entries,
		expired: atomicx.NewBool(),
	}
}

func (v *snapshotView) All() iter.Seq2[string, resource.Producer] {
	return func(yield func(string, resource.Producer) bool) {
		if v.expired.Load() {
			return
		}
		for _, e := range v.entries {
			if !yield(e.Name, e.Producer) {
				return
			}
		}
	}
}

func (v *snapshotView) Len() int {
	if v.expired.Load() {
		return 0
	}
	return len(v.entries)
}

func (v *snapshotView) Err() error {
	if v.expired.Load() {
		return errorx.ErrViewExpired
	}
	return nil
}

func (v *snapshotView) expire() {
	v.expired.Store(true)
}
