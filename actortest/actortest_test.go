package actortest

import (
	"sort"
	"strings"
	"testing"
	"time"
)

func TestKV_Strings(t *testing.T) {
	kv := NewKV()

	if _, ok, _ := kv.Get("missing"); ok {
		t.Error("missing key reported present")
	}
	if err := kv.Set("name", "alice", 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if v, ok, _ := kv.Get("name"); !ok || v != "alice" {
		t.Errorf("Get = (%q, %v)", v, ok)
	}
	if err := kv.DelKey("name"); err != nil {
		t.Fatalf("DelKey returned error: %v", err)
	}
	if _, ok, _ := kv.Get("name"); ok {
		t.Error("deleted key reported present")
	}
}

func TestKV_AtomicAdd(t *testing.T) {
	kv := NewKV()

	// Absent key counts from zero.
	if n, _ := kv.AtomicAdd("hits", 5); n != 5 {
		t.Errorf("AtomicAdd on absent key = %d, want 5", n)
	}
	if n, _ := kv.AtomicAdd("hits", -2); n != 3 {
		t.Errorf("AtomicAdd = %d, want 3", n)
	}
	if v, _, _ := kv.Get("hits"); v != "3" {
		t.Errorf("stored value = %q, want 3", v)
	}
}

func TestKV_ListRange(t *testing.T) {
	kv := NewKV()
	for _, item := range []string{"a", "b", "c", "d", "e"} {
		if _, err := kv.ListAdd("letters", item); err != nil {
			t.Fatalf("ListAdd returned error: %v", err)
		}
	}

	tests := []struct {
		name        string
		start, stop int32
		want        string
	}{
		{"full", 0, -1, "a b c d e"},
		{"middle", 1, 3, "b c d"},
		{"negative start", -2, -1, "d e"},
		{"stop clamped", 0, 99, "a b c d e"},
		{"inverted", 3, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kv.ListRange("letters", tt.start, tt.stop)
			if err != nil {
				t.Fatalf("ListRange returned error: %v", err)
			}
			if joined := strings.Join(got, " "); joined != tt.want {
				t.Errorf("ListRange(%d, %d) = %q, want %q", tt.start, tt.stop, joined, tt.want)
			}
		})
	}
}

func TestKV_ListDelItem(t *testing.T) {
	kv := NewKV()
	for _, item := range []string{"x", "y", "x", "z", "x"} {
		kv.ListAdd("items", item)
	}

	removed, err := kv.ListDelItem("items", "x")
	if err != nil {
		t.Fatalf("ListDelItem returned error: %v", err)
	}
	if removed != 3 {
		t.Errorf("removed = %d, want 3", removed)
	}
	got, _ := kv.ListRange("items", 0, -1)
	if strings.Join(got, " ") != "y z" {
		t.Errorf("remaining = %v, want [y z]", got)
	}
}

func TestKV_Sets(t *testing.T) {
	kv := NewKV()
	for _, m := range []string{"a", "b", "c"} {
		kv.SetAdd("s1", m)
	}
	for _, m := range []string{"b", "c", "d"} {
		kv.SetAdd("s2", m)
	}
	// Re-adding a member does not grow the set.
	if n, _ := kv.SetAdd("s1", "a"); n != 3 {
		t.Errorf("SetAdd duplicate = %d, want 3", n)
	}

	union, _ := kv.SetUnion([]string{"s1", "s2"})
	sort.Strings(union)
	if strings.Join(union, " ") != "a b c d" {
		t.Errorf("union = %v", union)
	}

	inter, _ := kv.SetIntersect([]string{"s1", "s2"})
	sort.Strings(inter)
	if strings.Join(inter, " ") != "b c" {
		t.Errorf("intersection = %v", inter)
	}

	if n, _ := kv.SetRemove("s1", "a"); n != 2 {
		t.Errorf("SetRemove = %d, want 2", n)
	}
}

func TestKV_ExistsAcrossFamilies(t *testing.T) {
	kv := NewKV()
	kv.Set("str", "v", 0)
	kv.ListAdd("list", "v")
	kv.SetAdd("set", "v")

	for _, key := range []string{"str", "list", "set"} {
		if ok, _ := kv.Exists(key); !ok {
			t.Errorf("Exists(%q) = false", key)
		}
	}
	if ok, _ := kv.Exists("nothing"); ok {
		t.Error("Exists reported an absent key")
	}
}

func TestBroker_RequestWithoutResponder(t *testing.T) {
	broker := NewBroker()
	if _, err := broker.Request("orders", nil, time.Second); err == nil {
		t.Fatal("request with no responder must fail like a timeout")
	}

	broker.RespondTo("orders", func(payload []byte) ([]byte, error) {
		return append([]byte("ack:"), payload...), nil
	})
	resp, err := broker.Request("orders", []byte("hi"), time.Second)
	if err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	if string(resp) != "ack:hi" {
		t.Errorf("response = %q", resp)
	}
}

func TestExtras_DeterministicSeed(t *testing.T) {
	a := NewExtras(7)
	b := NewExtras(7)
	for i := 0; i < 10; i++ {
		x, _ := a.GetRandom(0, 1000)
		y, _ := b.GetRandom(0, 1000)
		if x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}

	first, _ := a.GetSequenceNumber()
	second, _ := a.GetSequenceNumber()
	if second != first+1 {
		t.Errorf("sequence = %d then %d, want consecutive", first, second)
	}

	g1, _ := a.GetGUID()
	g2, _ := a.GetGUID()
	if g1 == g2 || g1 == "" {
		t.Errorf("GUIDs = %q, %q, want distinct non-empty", g1, g2)
	}
}

func TestTransport_UnscriptedRouteFails(t *testing.T) {
	transport := NewTransport().Respond("wascc:keyvalue", "Get", []byte("ok"))

	if _, err := transport.Call("default", "wascc:keyvalue", "Set", nil); err == nil {
		t.Fatal("unscripted route must fail loudly")
	}
	if resp, err := transport.Call("default", "wascc:keyvalue", "Get", nil); err != nil || string(resp) != "ok" {
		t.Errorf("scripted route = (%q, %v)", resp, err)
	}

	if got := len(transport.Calls()); got != 2 {
		t.Errorf("recorded %d calls, want 2", got)
	}
	transport.Reset()
	if got := len(transport.Calls()); got != 0 {
		t.Errorf("Reset left %d calls", got)
	}
}
