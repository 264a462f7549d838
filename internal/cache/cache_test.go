package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	s := NewService(time.Minute)

	if _, ok := s.Get("missing"); ok {
		t.Error("expected miss on empty cache")
	}

	s.Set("key", "value")
	got, ok := s.Get("key")
	if !ok || got != "value" {
		t.Errorf("expected hit with %q, got %v (%v)", "value", got, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	s := NewService(10 * time.Millisecond)

	s.Set("key", "value")
	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get("key"); ok {
		t.Error("expected entry to expire after TTL")
	}
}

func TestInvalidateAll(t *testing.T) {
	s := NewService(time.Minute)

	s.Set("a", 1)
	s.Set("b", 2)
	s.InvalidateAll()

	if _, ok := s.Get("a"); ok {
		t.Error("expected a to be flushed")
	}
	if _, ok := s.Get("b"); ok {
		t.Error("expected b to be flushed")
	}
}

func TestDefaultTTL(t *testing.T) {
	s := NewService(0)

	if s.TTL() != DefaultTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultTTL, s.TTL())
	}
}
