package errors

import (
	"fmt"
	"strings"
)

// Capability indicates which facade or layer reported the error
type Capability string

const (
	CapKeyValue     Capability = "keyvalue"     // key-value store facade
	CapMessaging    Capability = "messaging"    // message broker facade
	CapBlobstore    Capability = "blobstore"    // object store facade
	CapExtras       Capability = "extras"       // randomness/identifier facade
	CapEventStreams Capability = "eventstreams" // event stream facade
	CapLogging      Capability = "logging"      // host logging facade
	CapRaw          Capability = "raw"          // untyped pass-through facade
	CapDispatch     Capability = "dispatch"     // inbound operation dispatch
	CapTransport    Capability = "transport"    // host-call primitive
)

// Kind categorizes the error
type Kind string

const (
	KindHost          Kind = "host"          // host call rejected or host-side failure
	KindSerialization Kind = "serialization" // request/response codec failure
	KindEncoding      Kind = "encoding"      // raw byte/string conversion failure
	KindBadDispatch   Kind = "bad_dispatch"  // no handler for the attempted operation
	KindEnv           Kind = "env"           // missing or invalid environment value
	KindKeyValue      Kind = "keyvalue_error"
	KindMessaging     Kind = "messaging_error"
	KindMisc          Kind = "misc" // uncategorized collaborator failure
)

// Error is the structured error type used throughout the SDK.
// Every facade and the dispatch table report failures through this type so
// handlers can match on Kind rather than on a collaborator's error type.
type Error struct {
	Cause      error
	Capability Capability
	Kind       Kind
	Op         string // attempted operation, set for bad-dispatch and host failures
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Capability))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" op=")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two errors match when their capability and kind agree; an empty capability
// on the target acts as a wildcard so callers can match on kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Capability != "" && e.Capability != t.Capability {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(cap Capability, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Capability: cap,
			Kind:       kind,
		},
	}
}

// Op sets the attempted operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Host wraps a failed host call
func Host(cap Capability, op string, cause error) *Error {
	return &Error{
		Capability: cap,
		Kind:       KindHost,
		Op:         op,
		Cause:      cause,
	}
}

// Serialization wraps a codec encode/decode failure
func Serialization(cap Capability, cause error) *Error {
	return &Error{
		Capability: cap,
		Kind:       KindSerialization,
		Cause:      cause,
	}
}

// Encoding wraps a raw byte/string conversion failure, kept distinct from
// codec serialization failures
func Encoding(cap Capability, cause error) *Error {
	return &Error{
		Capability: cap,
		Kind:       KindEncoding,
		Cause:      cause,
	}
}

// BadDispatch reports an inbound operation with no registered handler.
// The attempted operation name is carried in Op.
func BadDispatch(op string) *Error {
	return &Error{
		Capability: CapDispatch,
		Kind:       KindBadDispatch,
		Op:         op,
		Detail:     fmt.Sprintf("no handler registered for %q", op),
	}
}

// Env reports a missing or invalid environment value
func Env(name string, cause error) *Error {
	return &Error{
		Capability: CapTransport,
		Kind:       KindEnv,
		Detail:     fmt.Sprintf("environment value %q", name),
		Cause:      cause,
	}
}

// KeyValue reports a logical key-value store failure
func KeyValue(detail string) *Error {
	return &Error{
		Capability: CapKeyValue,
		Kind:       KindKeyValue,
		Detail:     detail,
	}
}

// Messaging reports a logical message broker failure
func Messaging(detail string) *Error {
	return &Error{
		Capability: CapMessaging,
		Kind:       KindMessaging,
		Detail:     detail,
	}
}

// Misc wraps an uncategorized collaborator error
func Misc(cap Capability, cause error) *Error {
	return &Error{
		Capability: cap,
		Kind:       KindMisc,
		Cause:      cause,
	}
}
