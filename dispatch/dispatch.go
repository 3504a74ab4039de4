package dispatch

import (
	"go.uber.org/zap"

	actorsdk "github.com/wippyai/actor-sdk"
	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Handler processes one inbound operation. It receives a fresh capabilities
// Context and the raw payload, and returns the bytes handed back to the
// host.
type Handler func(ctx *actorsdk.Context, payload []byte) ([]byte, error)

// Typed adapts a handler taking a decoded request struct. The payload is
// deserialized into T before the handler runs; a payload that does not
// decode fails the dispatch with a serialization error.
func Typed[T any](fn func(ctx *actorsdk.Context, req T) ([]byte, error)) Handler {
	return func(ctx *actorsdk.Context, payload []byte) ([]byte, error) {
		var req T
		if err := codec.Deserialize(payload, &req); err != nil {
			return nil, errors.Serialization(errors.CapDispatch, err)
		}
		return fn(ctx, req)
	}
}

// Table maps operation names to handlers. It is built once during module
// initialization, frozen, and never mutated afterward; the guest executes
// one dispatch at a time, so lookups after Freeze need no locking.
type Table struct {
	handlers   map[string]Handler
	frozen     bool
	newContext func() *actorsdk.Context
}

// NewTable returns an empty dispatch table wiring handlers to the default
// host-backed Context.
func NewTable() *Table {
	return &Table{
		handlers:   make(map[string]Handler),
		newContext: actorsdk.New,
	}
}

// WithContext overrides how the per-dispatch Context is built. Tests use it
// to hand handlers a Context assembled from fakes.
func (t *Table) WithContext(fn func() *actorsdk.Context) *Table {
	if fn != nil {
		t.newContext = fn
	}
	return t
}

// Register adds a handler for an operation. Registering the same operation
// twice is an error at registration time rather than a silent overwrite, as
// is touching a frozen table.
func (t *Table) Register(operation string, h Handler) error {
	if t.frozen {
		return errors.New(errors.CapDispatch, errors.KindMisc).
			Op(operation).
			Detail("table is frozen").
			Build()
	}
	if operation == "" {
		return errors.New(errors.CapDispatch, errors.KindMisc).
			Detail("operation name cannot be empty").
			Build()
	}
	if h == nil {
		return errors.New(errors.CapDispatch, errors.KindMisc).
			Op(operation).
			Detail("handler cannot be nil").
			Build()
	}
	if _, dup := t.handlers[operation]; dup {
		return errors.New(errors.CapDispatch, errors.KindMisc).
			Op(operation).
			Detail("duplicate handler registration").
			Build()
	}
	t.handlers[operation] = h
	return nil
}

// MustRegister is Register for init-time wiring, panicking on conflict.
func (t *Table) MustRegister(operation string, h Handler) *Table {
	if err := t.Register(operation, h); err != nil {
		panic(err)
	}
	return t
}

// Freeze makes the table immutable and installs it as the process entry
// point for host-pushed operations.
func (t *Table) Freeze() *Table {
	t.frozen = true
	hostcall.SetEntry(t.Handle)
	return t
}

// Handle is the single inbound entry point: it routes a host-pushed
// operation to its registered handler with a fresh Context. An operation
// with no handler fails with a bad-dispatch error naming the operation,
// never a silent no-op.
func (t *Table) Handle(operation string, payload []byte) ([]byte, error) {
	h, ok := t.handlers[operation]
	if !ok {
		err := errors.BadDispatch(operation)
		Logger().Debug("inbound dispatch failed",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	resp, err := h(t.newContext(), payload)
	if err != nil {
		Logger().Debug("handler returned error",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	Logger().Debug("inbound dispatch complete",
		zap.String("operation", operation),
		zap.Int("response_bytes", len(resp)))
	return resp, nil
}

// Operations returns the registered operation names, for diagnostics.
func (t *Table) Operations() []string {
	ops := make([]string, 0, len(t.handlers))
	for op := range t.handlers {
		ops = append(ops, op)
	}
	return ops
}
