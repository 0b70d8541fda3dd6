// Package obslog wires structured logging for matchcore's ambient stack.
// Grounded on the retrieval pack's zap-based services (o9nn-echo and
// theRebelliousNerd-codenerd both configure zap.Logger at process start
// and thread it down explicitly rather than through a package-level
// global); matchcore follows the same shape.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-style zap.Logger, or a development-style one
// with human-readable console output when dev is true.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	return zap.NewProduction()
}

// WithTrace returns a child logger tagged with a trace id, the field
// every matchdemo subcommand attaches before running a match so a single
// invocation's log lines can be grepped out of a shared log stream.
func WithTrace(log *zap.Logger, traceID string) *zap.Logger {
	return log.With(zap.String("trace_id", traceID))
}
