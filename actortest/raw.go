package actortest

// Raw adapts a scripted Transport to the actorsdk.RawCapability contract,
// always calling through the default binding.
type Raw struct {
	transport *Transport
}

// NewRaw returns a raw capability fake backed by transport.
func NewRaw(transport *Transport) *Raw {
	return &Raw{transport: transport}
}

func (r *Raw) Call(capID, operation string, payload []byte) ([]byte, error) {
	return r.transport.Call("default", capID, operation, payload)
}
