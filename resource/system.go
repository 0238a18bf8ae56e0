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
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

const (
	gigabyte = 1 << 30
	megabyte = 1 << 20
)

// The system producers read the host through gopsutil. A failed read keeps
// the previous value, sampling errors never reach the subject.

type CPUProducer struct {
	mu   sync.Mutex
	last float64
}

func NewCPUProducer() *CPUProducer {
	return &CPUProducer{}
}

func (c *CPUProducer) Get() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	percs, err := cpu.Percent(0, false)
	if err == nil && len(percs) > 0 {
		c.last = percs[0]
	}
	return c.last
}

func (c *CPUProducer) Unit() string {
	return "%"
}

type MemoryProducer struct {
	mu   sync.Mutex
	last float64
}

func NewMemoryProducer() *MemoryProducer {
	return &MemoryProducer{}
}

func (m *MemoryProducer) Get() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	vms, err := mem.VirtualMemory()
	if err == nil && vms != nil {
		m.last = float64(vms.Used) / gigabyte
	}
	return m.last
}

func (m *MemoryProducer) Unit() string {
	return "GB"
}

// DiskProducer reports the used space of the partition mounted at path.
type DiskProducer struct {
	path string
	mu   sync.Mutex
	last float64
}

func NewDiskProducer(path string) *DiskProducer {
	if path == "" {
		path = "/"
	}
	return &DiskProducer{path: path}
}

func (d *DiskProducer) Get() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	usage, err := disk.Usage(d.path)
	if err == nil && usage != nil {
		d.last = float64(usage.Used) / gigabyte
	}
	return d.last
}

func (d *DiskProducer) Unit() string {
	return "GB"
}

// NetworkProducer reports the throughput of all interfaces since the
// previous sample. The first sample only primes the counters.
type NetworkProducer struct {
	mu       sync.Mutex
	prev     uint64
	prevTime time.Time
	last     float64
}

func NewNetworkProducer() *NetworkProducer {
	return &NetworkProducer{}
}

func (n *NetworkProducer) Get() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	counters, err := net.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return n.last
	}

	now := time.Now()
	total := counters[0].BytesSent + counters[0].BytesRecv
	if !n.prevTime.IsZero() {
		elapsed := now.Sub(n.prevTime).Seconds()
		if elapsed <= 0 {
			elapsed = 1.0
		}
		delta := total
		if total >= n.prev {
			delta = total - n.prev
		}
		n.last = float64(delta) / megabyte / elapsed
	}
	n.prev, n.prevTime = total, now
	return n.last
}

func (n *NetworkProducer) Unit() string {
	return "MB/s"
}

type LoadProducer struct {
	mu   sync.Mutex
	last float64
}

func NewLoadProducer() *LoadProducer {
	return &LoadProducer{}
}

func (l *LoadProducer) Get() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	avg, err := load.Avg()
	if err == nil && avg != nil {
		l.last = avg.Load1
	}
	return l.last
}

func (l *LoadProducer) Unit() string {
	return "load1"
}

type GoroutineProducer struct{}

func NewGoroutineProducer() *GoroutineProducer {
	return &GoroutineProducer{}
}

func (g *GoroutineProducer) Get() float64 {
	return float64(runtime.NumGoroutine())
}

func (g *GoroutineProducer) Unit() string {
	return "goroutines"
}
