package actorsdk

import (
	"time"

	"github.com/wippyai/actor-sdk/blobstore"
	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/events"
	"github.com/wippyai/actor-sdk/extras"
	"github.com/wippyai/actor-sdk/hostcall"
	"github.com/wippyai/actor-sdk/kv"
	"github.com/wippyai/actor-sdk/msg"
	"github.com/wippyai/actor-sdk/raw"
)

// KeyValueStore is the contract of a key-value store facade.
type KeyValueStore interface {
	// Get retrieves the value for a key; the bool reports existence.
	Get(key string) (string, bool, error)
	// Set stores a value; expiresSeconds of zero means no expiry.
	Set(key, value string, expiresSeconds int32) error
	// AtomicAdd adds delta atomically and returns the new value.
	AtomicAdd(key string, delta int32) (int32, error)
	// ListAdd appends to a list and returns the new length.
	ListAdd(key, item string) (int, error)
	// ListDelItem removes all occurrences of item, returning the count removed.
	ListDelItem(key, item string) (int, error)
	// DelKey deletes a key.
	DelKey(key string) error
	// ListRange returns list items from start through the inclusive stop;
	// negative indices count from the end.
	ListRange(key string, start, stop int32) ([]string, error)
	// ListClear empties a list.
	ListClear(key string) error
	// SetAdd adds a set member, returning the new set size.
	SetAdd(key, value string) (int, error)
	// SetRemove removes a set member, returning the new set size.
	SetRemove(key, value string) (int, error)
	// SetUnion returns the deduplicated union of the sets at keys.
	SetUnion(keys []string) ([]string, error)
	// SetIntersect returns the members common to every set at keys.
	SetIntersect(keys []string) ([]string, error)
	// SetMembers returns all members of one set.
	SetMembers(key string) ([]string, error)
	// Exists reports whether a key is present.
	Exists(key string) (bool, error)
}

// MessageBroker is the contract of a message broker facade.
type MessageBroker interface {
	// Publish sends a fire-and-forget message; replyTo may be empty.
	Publish(subject, replyTo string, payload []byte) error
	// Request publishes and blocks for a reply within the host-enforced
	// timeout.
	Request(subject string, payload []byte, timeout time.Duration) ([]byte, error)
}

// ObjectStore is the contract of an object store facade.
type ObjectStore interface {
	CreateContainer(name string) (codec.Container, error)
	RemoveContainer(name string) error
	RemoveObject(id, container string) error
	ListObjects(container string) (codec.BlobList, error)
	// GetBlobInfo returns metadata for one object; a missing object is
	// (zero, false, nil), not an error.
	GetBlobInfo(container, id string) (codec.Blob, bool, error)
	StartUpload(blob codec.Blob, chunkSize, totalBytes uint64) (codec.Transfer, error)
	UploadChunk(transfer codec.Transfer, sequenceNo uint64, bytes []byte) error
	StartDownload(blob codec.Blob, chunkSize uint64) (codec.Transfer, error)
}

// RawCapability is the contract of the untyped pass-through facade.
type RawCapability interface {
	Call(capID, operation string, payload []byte) ([]byte, error)
}

// Extras is the contract of the host's miscellaneous generators.
type Extras interface {
	// GetRandom returns a random number in [min, max].
	GetRandom(min, max uint32) (uint32, error)
	GetGUID() (string, error)
	// GetSequenceNumber is monotonically increasing and unique per host
	// process only.
	GetSequenceNumber() (uint64, error)
}

// EventStreams is the contract of an append-only event stream facade.
type EventStreams interface {
	// WriteEvent appends to a stream and returns the new event's ID.
	WriteEvent(stream string, values map[string]string) (string, error)
	// ReadAll returns every event of a stream in order.
	ReadAll(stream string) ([]codec.Event, error)
}

// Context aggregates one facade of each capability family behind a single
// handle passed to operation handlers. A fresh Context is created for every
// inbound dispatch and holds no state of its own; it does not outlive the
// handler call it was made for.
type Context struct {
	kv     KeyValueStore
	msg    MessageBroker
	raw    RawCapability
	blob   ObjectStore
	extras Extras
	events EventStreams
}

// New returns a Context wired to the real host through the default binding
// of every capability.
func New() *Context {
	return &Context{
		kv:     kv.Default(),
		msg:    msg.Default(),
		raw:    raw.Default(),
		blob:   blobstore.Default(),
		extras: extras.Default(),
		events: events.Default(),
	}
}

// Custom returns a Context built from explicit implementations. Tests use
// this with the fakes in actortest to run handlers without a host.
func Custom(kv KeyValueStore, msg MessageBroker, raw RawCapability, blob ObjectStore, extras Extras, events EventStreams) *Context {
	return &Context{
		kv:     kv,
		msg:    msg,
		raw:    raw,
		blob:   blob,
		extras: extras,
		events: events,
	}
}

// KV returns the key-value store facade.
func (c *Context) KV() KeyValueStore { return c.kv }

// Msg returns the message broker facade.
func (c *Context) Msg() MessageBroker { return c.msg }

// Raw returns the untyped pass-through facade.
func (c *Context) Raw() RawCapability { return c.raw }

// ObjectStore returns the object store facade.
func (c *Context) ObjectStore() ObjectStore { return c.blob }

// Extras returns the miscellaneous generators facade.
func (c *Context) Extras() Extras { return c.extras }

// Events returns the event streams facade.
func (c *Context) Events() EventStreams { return c.events }

// Log writes a line to the host console, outside any logging binding.
func (c *Context) Log(msg string) {
	hostcall.ConsoleLog(msg)
}
