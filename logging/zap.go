package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// hostCore is a zapcore.Core that forwards formatted entries through the
// host logging capability, so actors can use structured zap logging and
// still have records land at the host's bound log provider.
type hostCore struct {
	zapcore.LevelEnabler
	enc    zapcore.Encoder
	logger *Logger
}

// NewCore returns a zapcore.Core writing to the active logging binding.
// Records below enab's level are dropped before crossing the boundary.
func NewCore(enab zapcore.LevelEnabler) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "" // the host stamps records on its side
	return &hostCore{
		LevelEnabler: enab,
		enc:          zapcore.NewConsoleEncoder(cfg),
		logger:       &Logger{},
	}
}

// NewZap returns a ready-to-use zap logger over NewCore.
func NewZap(enab zapcore.LevelEnabler) *zap.Logger {
	return zap.New(NewCore(enab))
}

func (c *hostCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &hostCore{
		LevelEnabler: c.LevelEnabler,
		enc:          c.enc.Clone(),
		logger:       c.logger,
	}
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return clone
}

func (c *hostCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *hostCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	body := strings.TrimRight(buf.String(), "\n")
	buf.Free()
	return c.logger.Log(hostLevel(ent.Level), body)
}

func (c *hostCore) Sync() error { return nil }

// hostLevel maps zap levels onto the host's five severities. Everything at
// error and above collapses to the error level; everything below debug is
// trace.
func hostLevel(level zapcore.Level) uint32 {
	switch {
	case level >= zapcore.ErrorLevel:
		return LevelError
	case level == zapcore.WarnLevel:
		return LevelWarn
	case level == zapcore.InfoLevel:
		return LevelInfo
	case level == zapcore.DebugLevel:
		return LevelDebug
	default:
		return LevelTrace
	}
}
