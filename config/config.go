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

// Package config describes a monitoring session in YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/TimeWtr/Beacon/utils/log"
	yaml "go.yaml.in/yaml/v3"
)

type OutputType string

const (
	ConsoleOutput    OutputType = "console"
	FileOutput       OutputType = "file"
	LogOutput        OutputType = "log"
	PrometheusOutput OutputType = "prometheus"
)

func (o OutputType) Validate() bool {
	switch o {
	case ConsoleOutput, FileOutput, LogOutput, PrometheusOutput:
		return true
	default:
		return false
	}
}

const (
	DefaultCycles  = 1000
	DefaultLogPath = "resource.log"
)

type Config struct {
	Protocol        string        `yaml:"protocol"`
	Interval        time.Duration `yaml:"interval"`
	Schedule        string        `yaml:"schedule"` // 优先于interval
	Cycles          int           `yaml:"cycles"`   // 0表示直到停止
	SamplingWorkers int           `yaml:"samplingWorkers"`
	Log             Log           `yaml:"log"`
	MetricsAddr     string        `yaml:"metricsAddr"`
	Resources       []Resource    `yaml:"resources"`
	Outputs         []Output      `yaml:"outputs"`
}

type Log struct {
	Type  string `yaml:"type"`
	Level string `yaml:"level"`
}

type Resource struct {
	Name string        `yaml:"name"`
	Kind resource.Kind `yaml:"kind"`
	Path string        `yaml:"path"` // 仅disk使用
	Seed uint64        `yaml:"seed"` // 仅random-*使用
}

type Output struct {
	Type OutputType `yaml:"type"`
	Path string     `yaml:"path"`
}

// Default reproduces the classic session: four random producers pushed to
// the console and to resource.log, 1000 cycles back to back.
func Default() Config {
	return Config{
		Protocol: beacon.PushProtocol.String(),
		Cycles:   DefaultCycles,
		Log:      Log{Type: string(log.ZapLoggerType), Level: log.LevelInfo.String()},
		Resources: []Resource{
			{Name: "CPU", Kind: resource.RandomCPUKind},
			{Name: "Disk", Kind: resource.RandomDiskKind},
			{Name: "Memory", Kind: resource.RandomMemoryKind},
			{Name: "Network", Kind: resource.RandomNetworkKind},
		},
		Outputs: []Output{
			{Type: ConsoleOutput},
			{Type: FileOutput, Path: DefaultLogPath},
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document, rejecting unknown keys. Omitted log
// settings and outputs fall back to the defaults.
func Parse(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("yaml decode: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Protocol == "" {
		c.Protocol = beacon.PushProtocol.String()
	}
	if c.Log.Type == "" {
		c.Log.Type = string(log.ZapLoggerType)
	}
	if c.Log.Level == "" {
		c.Log.Level = log.LevelInfo.String()
	}
	if len(c.Outputs) == 0 {
		c.Outputs = []Output{{Type: ConsoleOutput}}
	}
}

func (c *Config) Validate() error {
	protocol, ok := beacon.ParseProtocol(c.Protocol)
	if !ok {
		return fmt.Errorf("%q: %w", c.Protocol, errorx.ErrInvalidProtocol)
	}

	if c.Interval < 0 {
		return errorx.ErrInvalidInterval
	}
	if c.Cycles < 0 {
		return errorx.ErrInvalidCycles
	}
	if c.SamplingWorkers < 0 {
		return errorx.ErrInvalidWorkers
	}
	if c.Interval == 0 && c.Schedule == "" && c.Cycles == 0 {
		return errorx.ErrUnboundedLoop
	}

	if c.Log.Type != "" && !log.LoggerType(c.Log.Type).Valid() {
		return fmt.Errorf("%q: %w", c.Log.Type, errorx.ErrInvalidLogger)
	}
	if log.ParseLevel(c.Log.Level) == log.LevelInvalid {
		return fmt.Errorf("%q: %w", c.Log.Level, errorx.ErrInvalidLevel)
	}

	if len(c.Resources) == 0 {
		return errorx.ErrNoResources
	}
	seen := make(map[string]struct{}, len(c.Resources))
	for idx, r := range c.Resources {
		if r.Name == "" {
			return fmt.Errorf("resources[%d]: %w", idx, errorx.ErrEmptyName)
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("resources[%d] %q: %w", idx, r.Name, errorx.ErrDuplicateName)
		}
		seen[r.Name] = struct{}{}
		if !r.Kind.Validate() {
			return fmt.Errorf("resources[%d] %q: %w", idx, r.Kind, errorx.ErrUnknownKind)
		}
	}

	for idx, o := range c.Outputs {
		if !o.Type.Validate() {
			return fmt.Errorf("outputs[%d] %q: %w", idx, o.Type, errorx.ErrUnknownOutput)
		}
		if o.Type == FileOutput && o.Path == "" {
			return fmt.Errorf("outputs[%d]: %w", idx, errorx.ErrMissingPath)
		}
		if o.Type == PrometheusOutput && protocol != beacon.PullProtocol {
			return fmt.Errorf("outputs[%d]: %w", idx, errorx.ErrPullOnlyOutput)
		}
	}

	return nil
}

// ProtocolValue is the validated protocol, push when it cannot be parsed.
func (c *Config) ProtocolValue() beacon.Protocol {
	p, ok := beacon.ParseProtocol(c.Protocol)
	if !ok {
		return beacon.PushProtocol
	}
	return p
}
