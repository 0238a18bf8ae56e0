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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/TimeWtr/Beacon/config"
	"github.com/TimeWtr/Beacon/session"
	"github.com/TimeWtr/Beacon/utils/log"
)

// overrides are the flags that replace config values when set.
type overrides struct {
	cycles      int
	interval    time.Duration
	protocol    string
	outputs     string
	metricsAddr string
}

func (o overrides) apply(cfg *config.Config) {
	if o.cycles >= 0 {
		cfg.Cycles = o.cycles
	}
	if o.interval >= 0 {
		cfg.Interval = o.interval
	}
	if o.protocol != "" {
		cfg.Protocol = o.protocol
	}
	if o.outputs != "" {
		cfg.Outputs = parseOutputs(o.outputs)
	}
	if o.metricsAddr != "" {
		cfg.MetricsAddr = o.metricsAddr
	}
}

func main() {
	var (
		cfgPath string
		o       overrides
	)
	flag.StringVar(&cfgPath, "config", "", "path to config yaml, empty runs the default session")
	flag.IntVar(&o.cycles, "cycles", -1, "number of cycles, 0 runs until interrupted and needs -interval or a schedule")
	flag.DurationVar(&o.interval, "interval", -1, "pause between cycles, 0 runs them back to back, negative keeps the config value")
	flag.StringVar(&o.protocol, "protocol", "", "push or pull")
	flag.StringVar(&o.outputs, "output", "", "comma separated outputs: console, file:<path>, log, prometheus")
	flag.StringVar(&o.metricsAddr, "metrics-addr", "", "serve /metrics on this address")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
	}
	o.apply(&cfg)

	l, err := log.New(log.LoggerType(cfg.Log.Type), log.ParseLevel(cfg.Log.Level), os.Stderr)
	if err != nil {
		fmt.Println("fatal logger:", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, err := session.New(cfg, l)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	runErr := s.Run(ctx)
	if err = s.Close(); err != nil {
		l.Error("close session", log.ErrorField(err))
	}
	if runErr != nil {
		fmt.Println("fatal run:", runErr)
		os.Exit(1)
	}
}

// parseOutputs turns "console,file:out.log" into output configs.
func parseOutputs(s string) []config.Output {
	var outs []config.Output
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tp, path, _ := strings.Cut(item, ":")
		outs = append(outs, config.Output{Type: config.OutputType(tp), Path: path})
	}
	return outs
}
