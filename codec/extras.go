package codec

// CapIDExtras is the capability ID for the host's miscellaneous utilities:
// random numbers, GUIDs, and per-host sequence numbers.
const CapIDExtras = "wascc:extras"

// Extras operation names.
const (
	OpRequestGuid     = "RequestGuid"
	OpRequestRandom   = "RequestRandom"
	OpRequestSequence = "RequestSequence"
)

// GeneratorRequest asks the host for one generated value. Min and Max only
// apply to random number requests.
type GeneratorRequest struct {
	Guid     bool   `msgpack:"guid"`
	Sequence bool   `msgpack:"sequence"`
	Random   bool   `msgpack:"random"`
	Min      uint32 `msgpack:"min"`
	Max      uint32 `msgpack:"max"`
}

// GeneratorResult carries the generated value matching the request type.
type GeneratorResult struct {
	Guid         string `msgpack:"guid"`
	SequenceNo   uint64 `msgpack:"sequence_no"`
	RandomNumber uint32 `msgpack:"random_number"`
}
