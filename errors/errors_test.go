package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Capability: CapKeyValue,
				Kind:       KindHost,
				Op:         "Get",
				Detail:     "host rejected call",
				Cause:      errors.New("connection reset"),
			},
			contains: []string{"[keyvalue]", "host", "op=Get", "host rejected call", "caused by", "connection reset"},
		},
		{
			name: "minimal error",
			err: &Error{
				Capability: CapDispatch,
				Kind:       KindBadDispatch,
			},
			contains: []string{"[dispatch]", "bad_dispatch"},
		},
		{
			name: "serialization with cause",
			err: &Error{
				Capability: CapBlobstore,
				Kind:       KindSerialization,
				Cause:      errors.New("short buffer"),
			},
			contains: []string{"[blobstore]", "serialization", "caused by", "short buffer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Capability: CapTransport,
		Kind:       KindHost,
		Cause:      cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Capability: CapKeyValue,
		Kind:       KindHost,
		Op:         "Get",
	}

	if !err.Is(&Error{Capability: CapKeyValue, Kind: KindHost}) {
		t.Error("Is should match same capability and kind")
	}

	if err.Is(&Error{Capability: CapMessaging, Kind: KindHost}) {
		t.Error("Is should not match different capability")
	}

	if err.Is(&Error{Capability: CapKeyValue, Kind: KindSerialization}) {
		t.Error("Is should not match different kind")
	}

	// Empty capability on the target matches any capability
	if !err.Is(&Error{Kind: KindHost}) {
		t.Error("Is should treat empty target capability as wildcard")
	}

	if !errors.Is(err, &Error{Kind: KindHost}) {
		t.Error("errors.Is should match on kind alone")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(CapMessaging, KindHost).
		Op("Request").
		Cause(cause).
		Detail("timeout after %dms", 500).
		Build()

	if err.Capability != CapMessaging {
		t.Errorf("Capability = %v, want %v", err.Capability, CapMessaging)
	}
	if err.Kind != KindHost {
		t.Errorf("Kind = %v, want %v", err.Kind, KindHost)
	}
	if err.Op != "Request" {
		t.Errorf("Op = %v, want Request", err.Op)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "timeout after 500ms" {
		t.Errorf("Detail = %v, want 'timeout after 500ms'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Host", func(t *testing.T) {
		cause := errors.New("down")
		err := Host(CapRaw, "DoThing", cause)
		if err.Kind != KindHost {
			t.Errorf("Kind = %v, want %v", err.Kind, KindHost)
		}
		if err.Op != "DoThing" {
			t.Errorf("Op = %v, want DoThing", err.Op)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable via errors.Is")
		}
	})

	t.Run("Serialization", func(t *testing.T) {
		err := Serialization(CapExtras, errors.New("bad msgpack"))
		if err.Kind != KindSerialization {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSerialization)
		}
	})

	t.Run("Encoding distinct from Serialization", func(t *testing.T) {
		enc := Encoding(CapRaw, errors.New("invalid utf-8"))
		ser := Serialization(CapRaw, errors.New("bad msgpack"))
		if errors.Is(enc, ser) {
			t.Error("encoding and serialization kinds must not match")
		}
	})

	t.Run("BadDispatch carries operation", func(t *testing.T) {
		err := BadDispatch("FrobnicateWidget")
		if err.Kind != KindBadDispatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindBadDispatch)
		}
		if err.Op != "FrobnicateWidget" {
			t.Errorf("Op = %v, want FrobnicateWidget", err.Op)
		}
		if !strings.Contains(err.Error(), "FrobnicateWidget") {
			t.Errorf("message %q should name the attempted operation", err.Error())
		}
	})

	t.Run("Env", func(t *testing.T) {
		err := Env("BINDING_NAME", errors.New("not set"))
		if err.Kind != KindEnv {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEnv)
		}
		if !strings.Contains(err.Detail, "BINDING_NAME") {
			t.Errorf("Detail = %v, should name the variable", err.Detail)
		}
	})

	t.Run("KeyValue", func(t *testing.T) {
		err := KeyValue("list index out of range")
		if err.Kind != KindKeyValue || err.Capability != CapKeyValue {
			t.Errorf("got %v/%v", err.Capability, err.Kind)
		}
	})

	t.Run("Messaging", func(t *testing.T) {
		err := Messaging("no responders")
		if err.Kind != KindMessaging || err.Capability != CapMessaging {
			t.Errorf("got %v/%v", err.Capability, err.Kind)
		}
	})

	t.Run("Misc", func(t *testing.T) {
		cause := errors.New("collaborator blew up")
		err := Misc(CapDispatch, cause)
		if err.Kind != KindMisc {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMisc)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable via errors.Is")
		}
	})
}
