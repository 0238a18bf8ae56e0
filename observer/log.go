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
	"strings"

	"github.com/TimeWtr/Beacon/notify"
	"github.com/TimeWtr/Beacon/utils/log"
)

var (
	_ notify.PushObserver = (*Log)(nil)
	_ notify.PullObserver = (*Log)(nil)
)

// Log forwards snapshots to a structured logger at info level. Pushed
// messages are logged as they are, pulled snapshots as one entry per
// resource with value and unit fields.
type Log struct {
	l log.Logger
}

func NewLog(l log.Logger) *Log {
	if l == nil {
		l = log.Nop()
	}
	return &Log{l: l}
}

func (o *Log) Write(message string) error {
	o.l.Info(strings.TrimSuffix(message, "\n"))
	return nil
}

func (o *Log) OnReady(view notify.SnapshotView) error {
	for name, p := range view.All() {
		o.l.Info("resource utilization",
			log.StringField("resource", name),
			log.Float64Field("value", p.Get()),
			log.StringField("unit", p.Unit()))
	}
	return nil
}
