package codec

// Operations the host pushes into every actor regardless of bound capabilities.
const (
	OpHealthRequest = "HealthRequest"
)

// HealthRequest is sent periodically by the host to verify the actor is
// responsive.
type HealthRequest struct {
	Placeholder bool `msgpack:"placeholder"`
}

// HealthResponse acknowledges a health request.
type HealthResponse struct {
	Healthy bool   `msgpack:"healthy"`
	Message string `msgpack:"message"`
}

// CapabilityConfiguration carries host-supplied configuration values for a
// capability binding.
type CapabilityConfiguration struct {
	Module string            `msgpack:"module"`
	Values map[string]string `msgpack:"values"`
}
