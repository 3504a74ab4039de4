// Package logging is the client facade for the host's reserved logging
// capability (wascc:logging).
//
// Unlike the other facades, the active logging binding is process-wide
// mutable state: Host switches it, Default resets it, and every subsequent
// log call, including those arriving through the zap bridge (which has no
// way to carry a binding), goes to the most recently set destination. Two
// logging destinations cannot be addressed simultaneously; callers toggle
// between them.
package logging

import (
	"sync"

	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Severity levels accepted by Log, re-exported from the wire contract.
const (
	LevelError = codec.LogError
	LevelWarn  = codec.LogWarn
	LevelInfo  = codec.LogInfo
	LevelDebug = codec.LogDebug
	LevelTrace = codec.LogTrace
)

var (
	bindingMu      sync.RWMutex
	currentBinding = hostcall.DefaultBinding
)

// Logger writes log records to the host through the active binding.
type Logger struct{}

// Host switches the process-wide logging binding and returns a logger.
// The switch applies to every logger and to the zap bridge.
func Host(binding string) *Logger {
	setBinding(binding)
	return &Logger{}
}

// Default resets the logging binding to the default destination.
func Default() *Logger {
	setBinding(hostcall.DefaultBinding)
	return &Logger{}
}

func setBinding(binding string) {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	bindingMu.Lock()
	currentBinding = binding
	bindingMu.Unlock()
}

// CurrentBinding returns the active logging destination.
func CurrentBinding() string {
	bindingMu.RLock()
	defer bindingMu.RUnlock()
	return currentBinding
}

// Log writes one record at the given severity. Host-side delivery failures
// are swallowed: logging is best effort and must never fail a handler. A
// request that cannot be encoded is reported.
func (l *Logger) Log(level uint32, body string) error {
	payload, err := codec.Serialize(codec.WriteLogRequest{Level: level, Body: body})
	if err != nil {
		return errors.Serialization(errors.CapLogging, err)
	}
	_, _ = hostcall.Call(CurrentBinding(), codec.CapIDLogging, codec.OpLog, payload)
	return nil
}

// Error writes a record at the error level.
func (l *Logger) Error(body string) error { return l.Log(LevelError, body) }

// Warn writes a record at the warn level.
func (l *Logger) Warn(body string) error { return l.Log(LevelWarn, body) }

// Info writes a record at the info level.
func (l *Logger) Info(body string) error { return l.Log(LevelInfo, body) }

// Debug writes a record at the debug level.
func (l *Logger) Debug(body string) error { return l.Log(LevelDebug, body) }

// Trace writes a record at the trace level.
func (l *Logger) Trace(body string) error { return l.Log(LevelTrace, body) }
