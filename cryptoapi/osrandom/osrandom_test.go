package osrandom

import (
	"bytes"
	"testing"
)

func TestRandom(t *testing.T) {
	rng := New()

	a := make([]byte, 32)
	b := make([]byte, 32)
	if err := rng.Random(a); err != nil {
		t.Fatal(err)
	}
	if err := rng.Random(b); err != nil {
		t.Fatal(err)
	}

	// Two 32-byte reads colliding means the OS RNG is broken, not us.
	if bytes.Equal(a, b) {
		t.Error("two reads returned identical bytes")
	}
	if bytes.Equal(a, make([]byte, 32)) {
		t.Error("read returned all zeros")
	}
}

func TestRandomEmpty(t *testing.T) {
	if err := New().Random(nil); err != nil {
		t.Fatal(err)
	}
}
