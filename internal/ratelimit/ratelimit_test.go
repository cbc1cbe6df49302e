package ratelimit

import (
	"testing"
	"time"
)

func TestNilLimiterAllowsAll(t *testing.T) {
	var l *MapLimiter
	for i := 0; i < 100; i++ {
		if !l.Allow("10.0.0.1", time.Now()) {
			t.Fatal("nil limiter refused")
		}
	}
	if New(0, 5, time.Minute) != nil {
		t.Fatal("invalid rps should return nil")
	}
	if New(1, 0, time.Minute) != nil {
		t.Fatal("invalid burst should return nil")
	}
}

func TestBurstThenRefuse(t *testing.T) {
	l := New(1, 3, time.Minute)
	now := time.Now()
	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1", now) {
			t.Fatalf("burst request %d refused", i)
		}
	}
	if l.Allow("10.0.0.1", now) {
		t.Fatal("request over burst allowed")
	}
	// a different key has its own bucket
	if !l.Allow("10.0.0.2", now) {
		t.Fatal("fresh key refused")
	}
}

func TestTokensRefill(t *testing.T) {
	l := New(10, 1, time.Minute)
	now := time.Now()
	if !l.Allow("k", now) {
		t.Fatal("first refused")
	}
	if l.Allow("k", now) {
		t.Fatal("second allowed without refill")
	}
	if !l.Allow("k", now.Add(200*time.Millisecond)) {
		t.Fatal("refused after refill window")
	}
}

func TestEmptyKeyAllowed(t *testing.T) {
	l := New(1, 1, time.Minute)
	now := time.Now()
	for i := 0; i < 5; i++ {
		if !l.Allow("  ", now) {
			t.Fatal("blank key should bypass limiting")
		}
	}
	if l.Len() != 0 {
		t.Fatalf("len=%d", l.Len())
	}
}

func TestIdleEviction(t *testing.T) {
	l := New(1000, 1000, 10*time.Millisecond)
	start := time.Now()
	l.Allow("old", start)
	// drive enough hits past the eviction threshold with the idle key stale
	later := start.Add(time.Minute)
	for i := 0; i < 600; i++ {
		l.Allow("hot", later)
	}
	if l.Len() != 1 {
		t.Fatalf("len=%d want 1 (idle key evicted)", l.Len())
	}
}
