package core

import (
	"testing"
	"time"
)

// mustEvent waits for the next event of the given kind, discarding others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed while waiting for kind %v", kind)
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
		}
	}
}

// nextEvent returns the very next event, for strict ordering assertions.
func nextEvent(t *testing.T, ch <-chan *Event) *Event {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatalf("event channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return nil
}

// mustNoEvent asserts that nothing arrives within the window.
func mustNoEvent(t *testing.T, ch <-chan *Event, within time.Duration) {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("expected no event, got kind %v: %+v", ev.Kind, ev)
		}
	case <-time.After(within):
	}
}
