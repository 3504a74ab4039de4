// Package actorsdk gives sandboxed WebAssembly actors typed access to the
// capabilities their host runtime provides.
//
// An actor cannot call the host directly. Every interaction goes through one
// blocking foreign call carrying a (binding, capability, operation, payload)
// tuple; this SDK layers typed facades, inbound dispatch, and a unified
// error taxonomy on top of that single primitive.
//
// # Architecture Overview
//
//	actor-sdk/           Root package with facade contracts and the Context
//	├── hostcall/        The foreign-call primitive, route keys, waPC guest ABI
//	├── dispatch/        Inbound operation table and the guest entry point
//	├── codec/           Wire structs, operation names, MessagePack codec
//	├── kv/              Key-value store facade
//	├── msg/             Message broker facade
//	├── blobstore/       Object store facade with chunked transfers
//	├── raw/             Untyped pass-through facade
//	├── extras/          Random numbers, GUIDs, sequence numbers
//	├── events/          Append-only event streams
//	├── logging/         Host logging with a process-wide binding + zap bridge
//	├── errors/          Structured error types shared by every layer
//	└── actortest/       Scripted transport and in-memory fakes for handler tests
//
// # Quick Start
//
// Register handlers on a dispatch table and freeze it at init time:
//
//	func init() {
//	    table := dispatch.NewTable()
//	    table.Register(codec.OpHealthRequest, dispatch.Typed(health))
//	    table.Register("IncrementCounter", increment)
//	    table.Freeze()
//	}
//
//	func health(ctx *actorsdk.Context, _ codec.HealthRequest) ([]byte, error) {
//	    return codec.Serialize(codec.HealthResponse{Healthy: true})
//	}
//
//	func increment(ctx *actorsdk.Context, payload []byte) ([]byte, error) {
//	    n, err := ctx.KV().AtomicAdd("counter", 1)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return []byte(strconv.Itoa(int(n))), nil
//	}
//
// Handlers receive a Context wired to the real host. Tests build one from
// fakes with Custom and the implementations in actortest.
//
// # Bindings
//
// A binding names one provider instance of a capability, letting an actor
// talk to, say, two distinct key-value stores at once:
//
//	cache := kv.Host("cache")
//	sessions := kv.Host("sessions")
//
// Facades hold their binding for life. The one exception is logging, whose
// active binding is process-wide and toggled, not multiplexed; see package
// logging.
package actorsdk
