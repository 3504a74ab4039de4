// Package kv is the client facade for a host-bound key-value store
// capability (wascc:keyvalue).
package kv

import (
	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Store is a client bound to one key-value provider instance. The binding is
// fixed at construction.
type Store struct {
	binding string
	call    hostcall.Func
}

// Default returns a store client on the default binding.
func Default() *Store {
	return Host(hostcall.DefaultBinding)
}

// Host returns a store client on a named binding.
func Host(binding string) *Store {
	return New(binding, hostcall.Call)
}

// New returns a store client with an explicit transport. Tests use this to
// inject fakes.
func New(binding string, call hostcall.Func) *Store {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	return &Store{binding: binding, call: call}
}

func (s *Store) roundTrip(op string, req, resp any) error {
	payload, err := codec.Serialize(req)
	if err != nil {
		return errors.Serialization(errors.CapKeyValue, err)
	}
	out, err := s.call(s.binding, codec.CapIDKeyValue, op, payload)
	if err != nil {
		return errors.Host(errors.CapKeyValue, op, err)
	}
	if resp == nil {
		return nil
	}
	if err := codec.Deserialize(out, resp); err != nil {
		return errors.Serialization(errors.CapKeyValue, err)
	}
	return nil
}

// Get retrieves the value for a key. The second result reports whether the
// key existed; a missing key is not an error.
func (s *Store) Get(key string) (string, bool, error) {
	var resp codec.GetResponse
	if err := s.roundTrip(codec.OpGet, codec.GetRequest{Key: key}, &resp); err != nil {
		return "", false, err
	}
	return resp.Value, resp.Exists, nil
}

// Set stores a value under a key. expiresSeconds of zero means no expiry.
func (s *Store) Set(key, value string, expiresSeconds int32) error {
	req := codec.SetRequest{Key: key, Value: value, ExpiresSeconds: expiresSeconds}
	return s.roundTrip(codec.OpSet, req, nil)
}

// AtomicAdd adds delta to the integer stored at key and returns the new
// value. The add is atomic on the provider side.
func (s *Store) AtomicAdd(key string, delta int32) (int32, error) {
	var resp codec.AddResponse
	if err := s.roundTrip(codec.OpAdd, codec.AddRequest{Key: key, Value: delta}, &resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

// ListAdd appends an item to the list stored at key and returns the new
// list length.
func (s *Store) ListAdd(key, item string) (int, error) {
	var resp codec.ListResponse
	if err := s.roundTrip(codec.OpListPush, codec.ListPushRequest{Key: key, Value: item}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// ListDelItem removes every occurrence of item from the list at key and
// returns how many entries were removed.
func (s *Store) ListDelItem(key, item string) (int, error) {
	var resp codec.ListResponse
	if err := s.roundTrip(codec.OpListItemDelete, codec.ListDelItemRequest{Key: key, Value: item}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// DelKey deletes a key.
func (s *Store) DelKey(key string) error {
	return s.roundTrip(codec.OpDel, codec.DelRequest{Key: key}, nil)
}

// ListRange returns the items of the list at key between start and stop.
// stop is inclusive and negative indices count from the end, matching the
// host provider's semantics.
func (s *Store) ListRange(key string, start, stop int32) ([]string, error) {
	var resp codec.ListRangeResponse
	req := codec.ListRangeRequest{Key: key, Start: start, Stop: stop}
	if err := s.roundTrip(codec.OpListRange, req, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// ListClear removes all items from the list at key.
func (s *Store) ListClear(key string) error {
	return s.roundTrip(codec.OpListClear, codec.ListClearRequest{Key: key}, nil)
}

// SetAdd adds a member to the set at key and returns the new set size.
func (s *Store) SetAdd(key, value string) (int, error) {
	var resp codec.SetOperationResponse
	if err := s.roundTrip(codec.OpSetAdd, codec.SetAddRequest{Key: key, Value: value}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// SetRemove removes a member from the set at key and returns the new set
// size.
func (s *Store) SetRemove(key, value string) (int, error) {
	var resp codec.SetOperationResponse
	if err := s.roundTrip(codec.OpSetRemove, codec.SetRemoveRequest{Key: key, Value: value}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// SetUnion returns the members of the union of the sets at keys. Duplicates
// are removed; order is unspecified.
func (s *Store) SetUnion(keys []string) ([]string, error) {
	var resp codec.SetQueryResponse
	if err := s.roundTrip(codec.OpSetUnion, codec.SetUnionRequest{Keys: keys}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// SetIntersect returns the members present in every set at keys.
func (s *Store) SetIntersect(keys []string) ([]string, error) {
	var resp codec.SetQueryResponse
	if err := s.roundTrip(codec.OpSetIntersection, codec.SetIntersectionRequest{Keys: keys}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// SetMembers returns all members of the set at key.
func (s *Store) SetMembers(key string) ([]string, error) {
	var resp codec.SetQueryResponse
	if err := s.roundTrip(codec.OpSetQuery, codec.SetQueryRequest{Key: key}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// Exists reports whether a key exists in the store.
func (s *Store) Exists(key string) (bool, error) {
	var resp codec.KeyExistsResponse
	if err := s.roundTrip(codec.OpKeyExists, codec.KeyExistsQuery{Key: key}, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}
