package dispatch_test

import (
	stderrors "errors"
	"testing"

	actorsdk "github.com/wippyai/actor-sdk"
	"github.com/wippyai/actor-sdk/actortest"
	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/dispatch"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

func newTestTable(t *testing.T) (*dispatch.Table, *actortest.Fixture) {
	t.Helper()
	ctx, fixture := actortest.NewContext()
	table := dispatch.NewTable().WithContext(func() *actorsdk.Context { return ctx })
	return table, fixture
}

func echoHandler(tag string) dispatch.Handler {
	return func(ctx *actorsdk.Context, payload []byte) ([]byte, error) {
		return append([]byte(tag+":"), payload...), nil
	}
}

func TestHandle_RoutesToMatchingHandler(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister("OpA", echoHandler("a")).
		MustRegister("OpB", echoHandler("b")).
		MustRegister("OpC", echoHandler("c"))

	tests := []struct {
		op   string
		want string
	}{
		{"OpA", "a:payload"},
		{"OpB", "b:payload"},
		{"OpC", "c:payload"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			resp, err := table.Handle(tt.op, []byte("payload"))
			if err != nil {
				t.Fatalf("Handle(%q) returned error: %v", tt.op, err)
			}
			if string(resp) != tt.want {
				t.Errorf("Handle(%q) = %q, want %q", tt.op, resp, tt.want)
			}
		})
	}
}

func TestHandle_BadDispatch(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister("Known", echoHandler("k"))

	_, err := table.Handle("Unknown", nil)
	if err == nil {
		t.Fatal("unregistered operation must not silently succeed")
	}
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindBadDispatch}) {
		t.Fatalf("error = %v, want bad dispatch kind", err)
	}
	var sdkErr *errors.Error
	if !stderrors.As(err, &sdkErr) {
		t.Fatal("error should be a structured SDK error")
	}
	if sdkErr.Op != "Unknown" {
		t.Errorf("error carries op %q, want Unknown", sdkErr.Op)
	}
}

func TestRegister_DuplicateIsAnError(t *testing.T) {
	table, _ := newTestTable(t)
	if err := table.Register("Op", echoHandler("first")); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := table.Register("Op", echoHandler("second")); err == nil {
		t.Fatal("duplicate registration must fail, not silently overwrite")
	}

	// The original handler still serves the operation.
	resp, err := table.Handle("Op", []byte("x"))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if string(resp) != "first:x" {
		t.Errorf("Handle = %q, want first:x", resp)
	}
}

func TestRegister_Validation(t *testing.T) {
	table, _ := newTestTable(t)
	if err := table.Register("", echoHandler("x")); err == nil {
		t.Error("empty operation name should fail")
	}
	if err := table.Register("Op", nil); err == nil {
		t.Error("nil handler should fail")
	}
}

func TestFreeze_RejectsLateRegistration(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister("Op", echoHandler("x")).Freeze()
	defer hostcall.SetEntry(nil)

	if err := table.Register("Late", echoHandler("late")); err == nil {
		t.Fatal("registration after Freeze must fail")
	}
}

func TestFreeze_InstallsProcessEntry(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister("Ping", echoHandler("pong")).Freeze()
	defer hostcall.SetEntry(nil)

	resp, err := hostcall.Invoke("Ping", []byte("!"))
	if err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if string(resp) != "pong:!" {
		t.Errorf("Invoke = %q, want pong:!", resp)
	}
}

func TestTyped_DecodesRequest(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister(codec.OpHealthRequest, dispatch.Typed(
		func(ctx *actorsdk.Context, req codec.HealthRequest) ([]byte, error) {
			return codec.Serialize(codec.HealthResponse{Healthy: true, Message: "ok"})
		}))

	payload, err := codec.Serialize(codec.HealthRequest{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	resp, err := table.Handle(codec.OpHealthRequest, payload)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	var health codec.HealthResponse
	if err := codec.Deserialize(resp, &health); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if !health.Healthy || health.Message != "ok" {
		t.Errorf("health = %+v", health)
	}
}

func TestTyped_CorruptPayload(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister("Typed", dispatch.Typed(
		func(ctx *actorsdk.Context, req codec.HealthRequest) ([]byte, error) {
			t.Fatal("handler must not run on a corrupt payload")
			return nil, nil
		}))

	_, err := table.Handle("Typed", []byte{0xc1})
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindSerialization}) {
		t.Errorf("error = %v, want serialization kind", err)
	}
}

func TestHandle_HandlerUsesContextFacades(t *testing.T) {
	table, fixture := newTestTable(t)
	table.MustRegister("Bump", func(ctx *actorsdk.Context, payload []byte) ([]byte, error) {
		n, err := ctx.KV().AtomicAdd("counter", 1)
		if err != nil {
			return nil, err
		}
		return []byte{byte(n)}, nil
	})

	resp, err := table.Handle("Bump", nil)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(resp) != 1 || resp[0] != 1 {
		t.Errorf("response = %v, want [1]", resp)
	}

	// The bump is visible in the fake store behind the context.
	value, ok, err := fixture.KV.Get("counter")
	if err != nil || !ok || value != "1" {
		t.Errorf("counter = (%q, %v, %v), want (1, true, nil)", value, ok, err)
	}
}

func TestOperations(t *testing.T) {
	table, _ := newTestTable(t)
	table.MustRegister("A", echoHandler("a")).MustRegister("B", echoHandler("b"))

	ops := table.Operations()
	if len(ops) != 2 {
		t.Fatalf("Operations = %v, want 2 entries", ops)
	}
	seen := map[string]bool{}
	for _, op := range ops {
		seen[op] = true
	}
	if !seen["A"] || !seen["B"] {
		t.Errorf("Operations = %v, want A and B", ops)
	}
}
