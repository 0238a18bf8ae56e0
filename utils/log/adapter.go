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
	"io"

	"github.com/TimeWtr/Beacon/errorx"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger of the given type writing to w. An empty type
// selects zap.
func New(tp LoggerType, level Level, w io.Writer) (Logger, error) {
	if tp == "" {
		tp = ZapLoggerType
	}
	if !tp.Valid() {
		return nil, errorx.ErrInvalidLogger
	}
	if !level.valid() {
		return nil, errorx.ErrInvalidLevel
	}

	switch tp {
	case LogrusLoggerType:
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.TextFormatter{DisableQuote: true})
		return NewLogrusAdapter(level, l), nil
	case ZerologLoggerType:
		return NewZerologAdapter(level, zerolog.New(w).With().Timestamp().Logger()), nil
	default:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		adapter := NewZapAdapter(zap.New(core))
		_ = adapter.SetLevel(level)
		return adapter, nil
	}
}

// Nop discards everything, it is the default logger of every component.
func Nop() Logger {
	return &ZapAdapter{logger: zap.NewNop(), level: LevelPanic}
}
