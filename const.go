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

package beacon

// Protocol is the notification protocol a subject speaks to its observers.
type Protocol int

const (
	// PushProtocol the subject renders the messages and hands them over.
	PushProtocol Protocol = iota
	// PullProtocol the subject only signals, observers read the snapshot view.
	PullProtocol
)

func (p Protocol) String() string {
	switch p {
	case PushProtocol:
		return "push"
	case PullProtocol:
		return "pull"
	default:
		return "unknown"
	}
}

func (p Protocol) Validate() bool {
	switch p {
	case PushProtocol, PullProtocol:
		return true
	default:
		return false
	}
}

// ParseProtocol is the inverse of Protocol.String.
func ParseProtocol(s string) (Protocol, bool) {
	switch s {
	case "push", "":
		return PushProtocol, true
	case "pull":
		return PullProtocol, true
	default:
		return Protocol(-1), false
	}
}

// State of a subject, a subject is notifying while a cycle is in flight.
type State int32

const (
	IdleState State = iota
	NotifyingState
)

func (s State) String() string {
	switch s {
	case IdleState:
		return "idle"
	case NotifyingState:
		return "notifying"
	default:
		return "unknown"
	}
}

type DeliveryResult int

const (
	DeliverySuccess DeliveryResult = iota
	DeliveryFailure
	DeliveryPanic
)

func (d DeliveryResult) String() string {
	switch d {
	case DeliverySuccess:
		return "success"
	case DeliveryFailure:
		return "failure"
	case DeliveryPanic:
		return "panic"
	default:
		return "unknown"
	}
}
