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

package atomicx

import "sync/atomic"

// Value holds an int32 based enum, such as a state machine state.
type Value[T ~int32] struct {
	value int32
}

func NewValue[T ~int32](initial T) *Value[T] {
	return &Value[T]{value: int32(initial)}
}

func (v *Value[T]) Load() T {
	return T(atomic.LoadInt32(&v.value))
}

func (v *Value[T]) Store(val T) {
	atomic.StoreInt32(&v.value, int32(val))
}

func (v *Value[T]) Swap(val T) T {
	return T(atomic.SwapInt32(&v.value, int32(val)))
}

func (v *Value[T]) CompareAndSwap(oldVal, newVal T) bool {
	return atomic.CompareAndSwapInt32(&v.value, int32(oldVal), int32(newVal))
}
