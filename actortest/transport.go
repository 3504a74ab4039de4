package actortest

import (
	"fmt"
	"sync"

	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/hostcall"
)

// HostCall records one observed foreign call.
type HostCall struct {
	Binding   string
	CapID     string
	Operation string
	Payload   []byte
}

// Transport is a scripted fake for the foreign-call boundary. Responses and
// failures are keyed by route key; unscripted routes fail loudly so a test
// never silently exercises an unexpected call.
type Transport struct {
	mu        sync.Mutex
	responses map[string][]byte
	failures  map[string]error
	calls     []HostCall
}

// NewTransport returns an empty scripted transport.
func NewTransport() *Transport {
	return &Transport{
		responses: make(map[string][]byte),
		failures:  make(map[string]error),
	}
}

// Respond scripts raw response bytes for one (capability, operation) route.
func (t *Transport) Respond(capID, operation string, payload []byte) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses[hostcall.RouteKey(capID, operation)] = payload
	return t
}

// RespondWith scripts a response struct, serialized through the codec.
func (t *Transport) RespondWith(capID, operation string, v any) *Transport {
	payload, err := codec.Serialize(v)
	if err != nil {
		panic(fmt.Sprintf("actortest: cannot serialize scripted response: %v", err))
	}
	return t.Respond(capID, operation, payload)
}

// Fail scripts a transport failure for one route.
func (t *Transport) Fail(capID, operation string, err error) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[hostcall.RouteKey(capID, operation)] = err
	return t
}

// Call implements hostcall.Func. Pass the method value to a facade's New
// constructor or to hostcall.SetDefault.
func (t *Transport) Call(binding, capID, operation string, payload []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, HostCall{
		Binding:   binding,
		CapID:     capID,
		Operation: operation,
		Payload:   append([]byte(nil), payload...),
	})

	key := hostcall.RouteKey(capID, operation)
	if err, ok := t.failures[key]; ok {
		return nil, err
	}
	if resp, ok := t.responses[key]; ok {
		return resp, nil
	}
	return nil, fmt.Errorf("actortest: no scripted response for %s", key)
}

// Calls returns every observed call in order.
func (t *Transport) Calls() []HostCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]HostCall(nil), t.calls...)
}

// CallsTo returns the observed calls for one route.
func (t *Transport) CallsTo(capID, operation string) []HostCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []HostCall
	for _, c := range t.calls {
		if c.CapID == capID && c.Operation == operation {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears recorded calls but keeps the script.
func (t *Transport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = nil
}
