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
	"testing"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct{ name string }

func TestObserverSet(t *testing.T) {
	var s observerSet[*probe]
	a, b := &probe{"a"}, &probe{"a"}

	assert.True(t, s.add(a))
	assert.False(t, s.add(a), "same identity is added once")
	assert.True(t, s.add(b), "equal content, different identity")
	assert.Equal(t, 2, s.len())

	snap := s.snapshot()
	assert.True(t, s.remove(a))
	assert.False(t, s.remove(a))
	assert.Equal(t, []*probe{a, b}, snap, "snapshot is unaffected by later mutation")
	assert.Equal(t, []*probe{b}, s.snapshot())
}

func TestSnapshotView_Expire(t *testing.T) {
	r := resource.NewRegistry()
	require.NoError(t, r.Add("CPU", resource.NewRandomCPU(1)))
	v := newSnapshotView(r.Entries())

	assert.Equal(t, 1, v.Len())
	assert.NoError(t, v.Err())

	v.expire()
	assert.Equal(t, 0, v.Len())
	assert.ErrorIs(t, v.Err(), errorx.ErrViewExpired)
	for range v.All() {
		t.Fatal("expired view must yield nothing")
	}
}

func TestEngine_SubscribeZero(t *testing.T) {
	e := newEngine[PushObserver](beacon.PushProtocol, nil, newOptions(nil))
	e.Subscribe(nil)
	assert.Equal(t, 0, e.Subscribers())
	assert.Equal(t, beacon.IdleState, e.State())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		label string
		value float64
		unit  string
		want  string
	}{
		{name: "integral", label: "CPU", value: 42, unit: "%", want: "CPU utilization: 42 %\n"},
		{name: "six significant digits", label: "Disk", value: 523.456789, unit: "TB", want: "Disk utilization: 523.457 TB\n"},
		{name: "large", label: "Network", value: 1e6, unit: "GB", want: "Network utilization: 1e+06 GB\n"},
		{name: "zero", label: "Memory", value: 0, unit: "GB", want: "Memory utilization: 0 GB\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.label, tt.value, tt.unit))
		})
	}
}
