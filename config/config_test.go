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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, beacon.PushProtocol, cfg.ProtocolValue())
	assert.Equal(t, DefaultCycles, cfg.Cycles)
	assert.Zero(t, cfg.Interval)
	require.Len(t, cfg.Resources, 4)
	assert.Equal(t, "CPU", cfg.Resources[0].Name)
	assert.Equal(t, resource.RandomNetworkKind, cfg.Resources[3].Kind)
	assert.Equal(t, []Output{{Type: ConsoleOutput}, {Type: FileOutput, Path: DefaultLogPath}}, cfg.Outputs)
}

func TestParse(t *testing.T) {
	doc := `
protocol: pull
interval: 250ms
cycles: 3
samplingWorkers: 2
log:
  type: zerolog
  level: debug
metricsAddr: ":9090"
resources:
  - name: CPU
    kind: cpu
  - name: Root
    kind: disk
    path: /
  - name: Dice
    kind: random-cpu
    seed: 7
outputs:
  - type: file
    path: /tmp/beacon.log
  - type: prometheus
`
	cfg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, beacon.PullProtocol, cfg.ProtocolValue())
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, 3, cfg.Cycles)
	assert.Equal(t, 2, cfg.SamplingWorkers)
	assert.Equal(t, Log{Type: "zerolog", Level: "debug"}, cfg.Log)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, []Resource{
		{Name: "CPU", Kind: resource.CPUKind},
		{Name: "Root", Kind: resource.DiskKind, Path: "/"},
		{Name: "Dice", Kind: resource.RandomCPUKind, Seed: 7},
	}, cfg.Resources)
	assert.Equal(t, []Output{{Type: FileOutput, Path: "/tmp/beacon.log"}, {Type: PrometheusOutput}}, cfg.Outputs)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("cycles: 1\nresources:\n  - {name: CPU, kind: random-cpu}\n"))
	require.NoError(t, err)

	assert.Equal(t, "push", cfg.Protocol)
	assert.Equal(t, Log{Type: "zap", Level: "info"}, cfg.Log)
	assert.Equal(t, []Output{{Type: ConsoleOutput}}, cfg.Outputs)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("cycles: 1\nbogus: true\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, errorx.ErrUnboundedLoop)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Protocol:  "push",
			Cycles:    1,
			Resources: []Resource{{Name: "CPU", Kind: resource.RandomCPUKind}},
			Outputs:   []Output{{Type: ConsoleOutput}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "invalid protocol",
			mutate:  func(c *Config) { c.Protocol = "poll" },
			wantErr: errorx.ErrInvalidProtocol,
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Interval = -time.Second },
			wantErr: errorx.ErrInvalidInterval,
		},
		{
			name:    "negative cycles",
			mutate:  func(c *Config) { c.Cycles = -1 },
			wantErr: errorx.ErrInvalidCycles,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.SamplingWorkers = -2 },
			wantErr: errorx.ErrInvalidWorkers,
		},
		{
			name:    "unbounded loop",
			mutate:  func(c *Config) { c.Cycles = 0 },
			wantErr: errorx.ErrUnboundedLoop,
		},
		{
			name: "unlimited cycles with interval",
			mutate: func(c *Config) {
				c.Cycles = 0
				c.Interval = time.Second
			},
		},
		{
			name: "unlimited cycles with schedule",
			mutate: func(c *Config) {
				c.Cycles = 0
				c.Schedule = "@every 1s"
			},
		},
		{
			name:    "invalid logger",
			mutate:  func(c *Config) { c.Log.Type = "glog" },
			wantErr: errorx.ErrInvalidLogger,
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: errorx.ErrInvalidLevel,
		},
		{
			name:    "no resources",
			mutate:  func(c *Config) { c.Resources = nil },
			wantErr: errorx.ErrNoResources,
		},
		{
			name:    "empty resource name",
			mutate:  func(c *Config) { c.Resources[0].Name = "" },
			wantErr: errorx.ErrEmptyName,
		},
		{
			name: "duplicate resource name",
			mutate: func(c *Config) {
				c.Resources = append(c.Resources, Resource{Name: "CPU", Kind: resource.CPUKind})
			},
			wantErr: errorx.ErrDuplicateName,
		},
		{
			name:    "unknown kind",
			mutate:  func(c *Config) { c.Resources[0].Kind = "gpu" },
			wantErr: errorx.ErrUnknownKind,
		},
		{
			name:    "unknown output",
			mutate:  func(c *Config) { c.Outputs[0].Type = "kafka" },
			wantErr: errorx.ErrUnknownOutput,
		},
		{
			name:    "file without path",
			mutate:  func(c *Config) { c.Outputs[0].Type = FileOutput },
			wantErr: errorx.ErrMissingPath,
		},
		{
			name:    "prometheus with push",
			mutate:  func(c *Config) { c.Outputs[0].Type = PrometheusOutput },
			wantErr: errorx.ErrPullOnlyOutput,
		},
		{
			name: "prometheus with pull",
			mutate: func(c *Config) {
				c.Protocol = "pull"
				c.Outputs[0].Type = PrometheusOutput
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beacon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cycles: 2\nresources:\n  - {name: G, kind: goroutines}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Cycles)
	assert.Equal(t, resource.GoroutinesKind, cfg.Resources[0].Kind)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
