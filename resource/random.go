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
	"math/rand/v2"
	"sync"
)

// DefaultSeed keeps runs reproducible unless a seed is configured.
const DefaultSeed uint64 = 1729

// Uniform draws values from a uniform distribution over [from, to]. Integer
// generators are inclusive on both ends, real ones exclude to.
type Uniform struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	from    float64
	to      float64
	integer bool
	unit    string
}

func NewUniformInt(from, to int, unit string, seed uint64) *Uniform {
	if to < from {
		from, to = to, from
	}
	return &Uniform{
		rnd:     rand.New(rand.NewPCG(seed, seed)),
		from:    float64(from),
		to:      float64(to),
		integer: true,
		unit:    unit,
	}
}

func NewUniformReal(from, to float64, unit string, seed uint64) *Uniform {
	if to < from {
		from, to = to, from
	}
	return &Uniform{
		rnd:  rand.New(rand.NewPCG(seed, seed)),
		from: from,
		to:   to,
		unit: unit,
	}
}

func (u *Uniform) Get() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.integer {
		return u.from + float64(u.rnd.IntN(int(u.to-u.from)+1))
	}
	return u.from + u.rnd.Float64()*(u.to-u.from)
}

func (u *Uniform) Unit() string {
	return u.unit
}

func NewRandomCPU(seed uint64) *Uniform {
	return NewUniformInt(0, 100, "%", seed)
}

func NewRandomDisk(seed uint64) *Uniform {
	return NewUniformReal(1, 1e3, "TB", seed)
}

func NewRandomMemory(seed uint64) *Uniform {
	return NewUniformReal(2<<3, 2<<10, "GB", seed)
}

func NewRandomNetwork(seed uint64) *Uniform {
	return NewUniformReal(1e2, 1e3, "GB", seed)
}
