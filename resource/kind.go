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

	"github.com/TimeWtr/Beacon/errorx"
)

type Kind string

const (
	RandomCPUKind     Kind = "random-cpu"
	RandomDiskKind    Kind = "random-disk"
	RandomMemoryKind  Kind = "random-memory"
	RandomNetworkKind Kind = "random-network"
	CPUKind           Kind = "cpu"
	MemoryKind        Kind = "memory"
	DiskKind          Kind = "disk"
	NetworkKind       Kind = "network"
	LoadKind          Kind = "load"
	GoroutinesKind    Kind = "goroutines"
)

func (k Kind) Validate() bool {
	switch k {
	case RandomCPUKind, RandomDiskKind, RandomMemoryKind, RandomNetworkKind,
		CPUKind, MemoryKind, DiskKind, NetworkKind, LoadKind, GoroutinesKind:
		return true
	default:
		return false
	}
}

// New builds a producer of the given kind. path is only used by DiskKind,
// seed only by the random kinds, zero selects DefaultSeed.
func New(kind Kind, path string, seed uint64) (Producer, error) {
	if seed == 0 {
		seed = DefaultSeed
	}

	switch kind {
	case RandomCPUKind:
		return NewRandomCPU(seed), nil
	case RandomDiskKind:
		return NewRandomDisk(seed), nil
	case RandomMemoryKind:
		return NewRandomMemory(seed), nil
	case RandomNetworkKind:
		return NewRandomNetwork(seed), nil
	case CPUKind:
		return NewCPUProducer(), nil
	case MemoryKind:
		return NewMemoryProducer(), nil
	case DiskKind:
		return NewDiskProducer(path), nil
	case NetworkKind:
		return NewNetworkProducer(), nil
	case LoadKind:
		return NewLoadProducer(), nil
	case GoroutinesKind:
		return NewGoroutineProducer(), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, errorx.ErrUnknownKind)
	}
}
