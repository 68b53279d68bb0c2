package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("sqlite backend is accepted", func(t *testing.T) {
		c := Config{Backend: BackendSQLite, DataDir: "/tmp/x"}
		if err := c.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty backend is rejected", func(t *testing.T) {
		c := Config{}
		if err := c.Validate(); !errors.Is(err, ErrBackendEmpty) {
			t.Fatalf("expected ErrBackendEmpty, got %v", err)
		}
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		c := Config{Backend: "postgres"}
		if err := c.Validate(); !errors.Is(err, ErrBackendUnknown) {
			t.Fatalf("expected ErrBackendUnknown, got %v", err)
		}
	})
}

func TestEntryValidate(t *testing.T) {
	e := &Entry{Operation: "Addition", Inputs: "2 + 3", Result: 5}
	if err := e.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (&Entry{Inputs: "2 + 3"}).Validate(); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
}
