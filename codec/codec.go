package codec

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Serialize encodes a request or response struct into its wire form.
func Serialize(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Deserialize decodes wire bytes into the given struct pointer.
func Deserialize(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
