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

// Package session assembles a running monitor from a config: producers,
// registry, subject, observers and the optional metrics endpoint.
package session

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/TimeWtr/Beacon"
	"github.com/TimeWtr/Beacon/config"
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/TimeWtr/Beacon/metrics"
	"github.com/TimeWtr/Beacon/monitor"
	"github.com/TimeWtr/Beacon/notify"
	"github.com/TimeWtr/Beacon/observer"
	"github.com/TimeWtr/Beacon/resource"
	"github.com/TimeWtr/Beacon/utils/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"golang.org/x/net/context"
)

const shutdownTimeout = 5 * time.Second

type options struct {
	stdout io.Writer
}

type Options func(*options)

// WithStdout redirects console outputs, standard output by default.
func WithStdout(w io.Writer) Options {
	return func(o *options) {
		if w != nil {
			o.stdout = w
		}
	}
}

type Session struct {
	cfg       config.Config
	l         log.Logger
	registry  *resource.Registry
	collector *metrics.Prometheus
	gauges    *observer.Prometheus
	push      *notify.PushSubject
	pull      *notify.PullSubject
	closers   []io.Closer
	monitor   *monitor.Monitor
	closeOnce sync.Once
	closeErr  error
}

func New(cfg config.Config, l log.Logger, opts ...Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		l = log.Nop()
	}
	o := options{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		cfg:       cfg,
		l:         l,
		registry:  resource.NewRegistry(),
		collector: metrics.NewPrometheus(prometheus.NewRegistry()),
	}
	if err := s.build(o); err != nil {
		return nil, multierr.Append(err, s.Close())
	}

	return s, nil
}

func (s *Session) build(o options) error {
	for _, r := range s.cfg.Resources {
		p, err := resource.New(r.Kind, r.Path, r.Seed)
		if err != nil {
			return err
		}
		if err = s.registry.Add(r.Name, p); err != nil {
			return err
		}
	}

	subjectOpts := []notify.Options{
		notify.WithLogger(s.l),
		notify.WithCollector(s.collector),
		notify.WithSamplingWorkers(s.cfg.SamplingWorkers),
	}

	var notifier notify.Notifier
	switch s.cfg.ProtocolValue() {
	case beacon.PullProtocol:
		s.pull = notify.NewPullSubject(s.registry, subjectOpts...)
		notifier = s.pull
	default:
		push, err := notify.NewPushSubject(s.registry, subjectOpts...)
		if err != nil {
			return fmt.Errorf("create push subject: %w", err)
		}
		s.push = push
		notifier = s.push
	}

	for idx, out := range s.cfg.Outputs {
		if err := s.attach(out, o); err != nil {
			return fmt.Errorf("outputs[%d]: %w", idx, err)
		}
	}

	m, err := monitor.NewMonitor(notifier, s.l,
		monitor.WithInterval(s.cfg.Interval),
		monitor.WithSchedule(s.cfg.Schedule),
		monitor.WithCycles(s.cfg.Cycles))
	if err != nil {
		return err
	}
	s.monitor = m

	return nil
}

// attach creates the observer of one output and subscribes it.
func (s *Session) attach(out config.Output, o options) error {
	var ob any
	switch out.Type {
	case config.ConsoleOutput:
		ob = observer.NewConsole(o.stdout)
	case config.FileOutput:
		f, err := observer.NewFile(out.Path)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, f)
		ob = f
	case config.LogOutput:
		ob = observer.NewLog(s.l)
	case config.PrometheusOutput:
		// the gauges can be registered only once, repeated outputs share them
		if s.gauges == nil {
			s.gauges = observer.NewPrometheus(s.collector.Registry())
		}
		ob = s.gauges
	default:
		return fmt.Errorf("%q: %w", out.Type, errorx.ErrUnknownOutput)
	}

	if s.pull != nil {
		pob, ok := ob.(notify.PullObserver)
		if !ok {
			return fmt.Errorf("%q: %w", out.Type, errorx.ErrUnknownOutput)
		}
		s.pull.Subscribe(pob)
		return nil
	}

	pob, ok := ob.(notify.PushObserver)
	if !ok {
		return fmt.Errorf("%q: %w", out.Type, errorx.ErrPullOnlyOutput)
	}
	s.push.Subscribe(pob)
	return nil
}

// Run blocks until the configured cycles are done or ctx is cancelled. The
// metrics endpoint, when configured, lives exactly as long as the run: the
// listener is closed and the server goroutine joined before Run returns.
func (s *Session) Run(ctx context.Context) error {
	var ln net.Listener
	if s.cfg.MetricsAddr != "" {
		var err error
		if ln, err = net.Listen("tcp", s.cfg.MetricsAddr); err != nil {
			return fmt.Errorf("listen metrics: %w", err)
		}
	}

	if err := s.monitor.Start(ctx); err != nil {
		if ln != nil {
			err = multierr.Append(err, ln.Close())
		}
		return err
	}
	if ln == nil {
		<-s.monitor.Done()
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.collector.Handler())
	server := &http.Server{Handler: mux, ReadHeaderTimeout: shutdownTimeout}
	served := make(chan struct{})
	go func() {
		defer close(served)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.l.Error("metrics server stopped", log.ErrorField(err))
		}
	}()
	s.l.Info("metrics server listening", log.StringField("addr", ln.Addr().String()))

	<-s.monitor.Done()
	return s.shutdown(server, served)
}

func (s *Session) shutdown(server *http.Server, served <-chan struct{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if err = server.Shutdown(ctx); err != nil {
		err = multierr.Append(fmt.Errorf("shutdown metrics: %w", err), server.Close())
	}
	<-served
	return err
}

// Close stops the monitor and releases every sink. Only the first call does
// any work, later calls return the same error.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.monitor != nil {
			s.monitor.Stop()
		}
		if s.push != nil {
			s.push.Close()
		}
		for _, c := range s.closers {
			s.closeErr = multierr.Append(s.closeErr, c.Close())
		}
	})
	return s.closeErr
}

func (s *Session) Registry() *resource.Registry {
	return s.registry
}

// Subject returns the notifier the monitor drives, a *notify.PushSubject or
// a *notify.PullSubject depending on the protocol.
func (s *Session) Subject() notify.Notifier {
	if s.pull != nil {
		return s.pull
	}
	return s.push
}

func (s *Session) Stats() monitor.Stats {
	return s.monitor.Stats()
}

// MetricsHandler serves the engine and resource metrics of the session.
func (s *Session) MetricsHandler() http.Handler {
	return s.collector.Handler()
}

func (s *Session) Metrics() *prometheus.Registry {
	return s.collector.Registry()
}
