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

package errorx

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName = errors.New("resource name already exists")
	ErrUnknownName   = errors.New("resource name does not exist")
	ErrEmptyName     = errors.New("resource name cannot be empty")
	ErrNilProducer   = errors.New("resource producer cannot be nil")
)

var (
	ErrSinkClosed    = errors.New("the sink is already closed")
	ErrObserverPanic = errors.New("observer panicked during delivery")
	ErrViewExpired   = errors.New("snapshot view used after its cycle ended")
)

var (
	ErrInvalidProtocol = errors.New("protocol must be push or pull")
	ErrInvalidInterval = errors.New("interval cannot be negative")
	ErrInvalidCycles   = errors.New("cycles cannot be negative")
	ErrInvalidWorkers  = errors.New("sampling workers cannot be negative")
	ErrNoResources     = errors.New("at least one resource is required")
	ErrUnknownKind     = errors.New("unknown resource kind")
	ErrUnknownOutput   = errors.New("unknown output type")
	ErrMissingPath     = errors.New("file output requires a path")
	ErrPullOnlyOutput  = errors.New("output only supports the pull protocol")
	ErrUnboundedLoop   = errors.New("zero interval without schedule requires a cycle limit")
)

var (
	ErrMonitorRunning = errors.New("monitor is already running")
	ErrMonitorStopped = errors.New("monitor has been stopped")
	ErrNilNotifier    = errors.New("notifier cannot be nil")
	ErrInvalidLogger  = errors.New("logger type is invalid")
	ErrInvalidLevel   = errors.New("invalid log level")
)

// DeliveryError is the failure of one delivery inside a notification cycle.
// Resource is empty for pull deliveries, Index is the position of the
// observer in the cycle's subscriber snapshot.
type DeliveryError struct {
	Protocol string
	Resource string
	Index    int
	Err      error
}

func (d *DeliveryError) Error() string {
	if d.Resource == "" {
		return fmt.Sprintf("%s delivery to observer #%d: %v", d.Protocol, d.Index, d.Err)
	}
	return fmt.Sprintf("%s delivery of %q to observer #%d: %v", d.Protocol, d.Resource, d.Index, d.Err)
}

func (d *DeliveryError) Unwrap() error {
	return d.Err
}
