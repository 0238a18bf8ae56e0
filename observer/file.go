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

package observer

import (
	"fmt"
	"os"
	"sync"

	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/notify"
)

var (
	_ notify.PushObserver = (*File)(nil)
	_ notify.PullObserver = (*File)(nil)
)

const fileMode = 0o644

// File owns an output file from construction until Close. Writes after
// Close fail with errorx.ErrSinkClosed. In pull mode every resource is
// written as its own line.
type File struct {
	mu     sync.Mutex
	path   string
	f      *os.File
	closed bool
}

// NewFile opens path for writing, truncating any previous content.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errorx.ErrMissingPath
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return nil, fmt.Errorf("open sink: %w", err)
	}

	return &File{path: path, f: f}, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Write(message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errorx.ErrSinkClosed
	}
	_, err := f.f.WriteString(message)
	return err
}

func (f *File) OnReady(view notify.SnapshotView) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errorx.ErrSinkClosed
	}
	for name, p := range view.All() {
		if _, err := f.f.WriteString(notify.Render(name, p)); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the file, only the first call does any work.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.f.Close()
}
