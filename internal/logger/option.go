package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelCore filters a wrapped core by a fixed minimum level. The presenter
// uses it to apply log_level to its file logger independently of the
// process-wide atomic level.
type levelCore struct {
	zapcore.Core

	// minimum is the lowest level written.
	minimum zapcore.Level
}

// Enabled reports whether entries at l pass the filter.
func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.minimum.Enabled(l)
}

// Check registers the core for entries that pass the filter.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

// With keeps the filter on the child core.
//
//nolint:ireturn // zapcore.Core is the zap contract.
func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), minimum: c.minimum}
}

// WithLevel drops entries below lvl, whatever level the logger was built with.
//
//nolint:ireturn // zap.Option is the zap contract.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelCore{Core: core, minimum: lvl}
	})
}
