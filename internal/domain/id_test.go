package domain

import (
	"errors"
	"testing"
)

func TestParseIDAcceptsObjectIDHex(t *testing.T) {
	id := NewID()
	if len(id) != 24 {
		t.Fatalf("expected 24-hex id, got %q", id)
	}
	got, err := ParseID(id)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != id {
		t.Fatalf("parse changed the id: %q -> %q", id, got)
	}
}

func TestParseIDRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzz", "64b0f0a1d2c3b4a5968778690"} {
		if _, err := ParseID(bad); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("%q: expected ErrInvalidID, got %v", bad, err)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	if got := MinorUnits(100); got != 10000 {
		t.Fatalf("want 10000, got %d", got)
	}
}
