package actortest

import (
	actorsdk "github.com/wippyai/actor-sdk"
)

// Fixture bundles one of each fake so tests can assert against the doubles
// behind a Context.
type Fixture struct {
	KV        *KV
	Broker    *Broker
	Store     *ObjectStore
	Extras    *Extras
	Events    *EventStreams
	Transport *Transport
}

// NewContext returns a Context wired entirely to in-memory fakes, plus the
// fixture holding them.
func NewContext() (*actorsdk.Context, *Fixture) {
	f := &Fixture{
		KV:        NewKV(),
		Broker:    NewBroker(),
		Store:     NewObjectStore(),
		Extras:    NewExtras(1),
		Events:    NewEventStreams(),
		Transport: NewTransport(),
	}
	ctx := actorsdk.Custom(f.KV, f.Broker, NewRaw(f.Transport), f.Store, f.Extras, f.Events)
	return ctx, f
}
