package commands

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes console-encoded entries at lvl and above to w. Debug level
// switches to the development encoder with caller information.
func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	opts := []zap.Option{}
	if lvl == zapcore.DebugLevel {
		encCfg = zap.NewDevelopmentEncoderConfig()
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core, opts...)
}
