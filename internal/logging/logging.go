// Package logging builds the zap logger used for pipeline diagnostics.
package logging

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLevel is returned for a level zap does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// New builds a logger writing to w at the given level.
// JSON output uses the production encoder; otherwise a calm console encoder is used.
func New(level string, jsonOutput bool, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidLevel, "%q", level),
			"use one of debug, info, warn, error",
		)
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
