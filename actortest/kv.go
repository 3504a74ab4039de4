package actortest

import (
	"strconv"
	"sync"
)

// KV is an in-memory key-value store satisfying the actorsdk.KeyValueStore
// contract, with Redis-flavored list and set semantics.
type KV struct {
	mu      sync.RWMutex
	strings map[string]string
	lists   map[string][]string
	sets    map[string]map[string]struct{}
}

// NewKV returns an empty in-memory key-value store.
func NewKV() *KV {
	return &KV{
		strings: make(map[string]string),
		lists:   make(map[string][]string),
		sets:    make(map[string]map[string]struct{}),
	}
}

func (s *KV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.strings[key]
	return v, ok, nil
}

func (s *KV) Set(key, value string, expiresSeconds int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Expiry is ignored: tests never sleep on TTLs.
	s.strings[key] = value
	return nil
}

func (s *KV) AtomicAdd(key string, delta int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, _ := strconv.ParseInt(s.strings[key], 10, 32)
	current += int64(delta)
	s.strings[key] = strconv.FormatInt(current, 10)
	return int32(current), nil
}

func (s *KV) ListAdd(key, item string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append(s.lists[key], item)
	return len(s.lists[key]), nil
}

func (s *KV) ListDelItem(key, item string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.lists[key]
	kept := old[:0]
	removed := 0
	for _, v := range old {
		if v == item {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	s.lists[key] = kept
	return removed, nil
}

func (s *KV) DelKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.strings, key)
	delete(s.lists, key)
	delete(s.sets, key)
	return nil
}

func (s *KV) ListRange(key string, start, stop int32) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.lists[key]
	n := int32(len(list))
	if n == 0 {
		return nil, nil
	}
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop {
		return nil, nil
	}
	return append([]string(nil), list[start:stop+1]...), nil
}

func (s *KV) ListClear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, key)
	return nil
}

func (s *KV) SetAdd(key, value string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.sets[key]
	if set == nil {
		set = make(map[string]struct{})
		s.sets[key] = set
	}
	set[value] = struct{}{}
	return len(set), nil
}

func (s *KV) SetRemove(key, value string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.sets[key]
	delete(set, value)
	return len(set), nil
}

func (s *KV) SetUnion(keys []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	union := make(map[string]struct{})
	for _, key := range keys {
		for v := range s.sets[key] {
			union[v] = struct{}{}
		}
	}
	return setToSlice(union), nil
}

func (s *KV) SetIntersect(keys []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(keys) == 0 {
		return nil, nil
	}
	result := make(map[string]struct{})
	for v := range s.sets[keys[0]] {
		result[v] = struct{}{}
	}
	for _, key := range keys[1:] {
		for v := range result {
			if _, ok := s.sets[key][v]; !ok {
				delete(result, v)
			}
		}
	}
	return setToSlice(result), nil
}

func (s *KV) SetMembers(key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return setToSlice(s.sets[key]), nil
}

func (s *KV) Exists(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.strings[key]; ok {
		return true, nil
	}
	if _, ok := s.lists[key]; ok {
		return true, nil
	}
	_, ok := s.sets[key]
	return ok, nil
}

func setToSlice(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}
