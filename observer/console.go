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

// Package observer provides the sinks a session can subscribe to a subject.
// Most of them speak both protocols.
package observer

import (
	"io"
	"os"
	"sync"

	"github.com/TimeWtr/Beacon/notify"
	"github.com/TimeWtr/Beacon/utils/pools"
)

var (
	_ notify.PushObserver = (*Console)(nil)
	_ notify.PullObserver = (*Console)(nil)
)

// Console writes to a terminal-like writer. In pull mode the whole snapshot
// goes out as one combined write.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole writes to w, nil means standard output.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

func (c *Console) Write(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := io.WriteString(c.w, message)
	return err
}

func (c *Console) OnReady(view notify.SnapshotView) error {
	buf := pools.GetBytes()
	defer pools.PutBytes(buf)

	for name, p := range view.All() {
		*buf = append(*buf, notify.Render(name, p)...)
	}
	if len(*buf) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.w.Write(*buf)
	return err
}
