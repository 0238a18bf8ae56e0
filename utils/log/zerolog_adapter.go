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

package log

import (
	"github.com/TimeWtr/Beacon/errorx"
	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
	level  Level
}

func NewZerologAdapter(level Level, logger zerolog.Logger) Logger {
	z := &ZerologAdapter{logger: logger, level: LevelInfo}
	_ = z.SetLevel(level)
	return z
}

func (z *ZerologAdapter) Debug(format string, args ...Field) {
	z.log(LevelDebug, format, args...)
}

func (z *ZerologAdapter) Info(format string, args ...Field) {
	z.log(LevelInfo, format, args...)
}

func (z *ZerologAdapter) Warn(format string, args ...Field) {
	z.log(LevelWarn, format, args...)
}

func (z *ZerologAdapter) Error(format string, args ...Field) {
	z.log(LevelError, format, args...)
}

func (z *ZerologAdapter) Fatal(format string, args ...Field) {
	z.log(LevelFatal, format, args...)
}

func (z *ZerologAdapter) Panic(format string, args ...Field) {
	z.log(LevelPanic, format, args...)
}

func (z *ZerologAdapter) Sync() error {
	return nil
}

func (z *ZerologAdapter) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return z
	}

	ctx := z.logger.With()
	for _, field := range fields {
		ctx = ctx.Interface(field.Key, field.Val)
	}
	return &ZerologAdapter{logger: ctx.Logger(), level: z.level}
}

func (z *ZerologAdapter) SetLevel(level Level) error {
	if !level.valid() {
		return errorx.ErrInvalidLevel
	}
	z.level = level
	z.logger = z.logger.Level(z.convertZerologLevel(level))
	return nil
}

func (z *ZerologAdapter) convertZerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelPanic:
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologAdapter) log(level Level, format string, fields ...Field) {
	if level < z.level {
		return
	}

	var event *zerolog.Event
	switch level {
	case LevelDebug:
		event = z.logger.Debug()
	case LevelInfo:
		event = z.logger.Info()
	case LevelWarn:
		event = z.logger.Warn()
	case LevelError:
		event = z.logger.Error()
	case LevelFatal:
		event = z.logger.Fatal()
	case LevelPanic:
		event = z.logger.Panic()
	default:
		return
	}

	for _, field := range fields {
		if err, ok := field.Val.(error); ok {
			event = event.AnErr(field.Key, err)
			continue
		}
		event = event.Interface(field.Key, field.Val)
	}
	event.Msg(format)
}
