package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type captureSender struct {
	mu    sync.Mutex
	sent  []string
	fired chan struct{}
}

func newCaptureSender() *captureSender {
	return &captureSender{fired: make(chan struct{}, 16)}
}

func (s *captureSender) Send(ctx context.Context, title, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, title)
	s.mu.Unlock()
	s.fired <- struct{}{}
	return nil
}

func (s *captureSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestTimerNotifier_IgnoresPastInstants(t *testing.T) {
	sender := newCaptureSender()
	n := NewTimerNotifier(sender)
	defer n.Shutdown()

	n.Schedule(uuid.New(), time.Now().Add(-time.Minute), "late", "dose")
	if n.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 for past instant", n.Pending())
	}
}

func TestTimerNotifier_FiresAndForgets(t *testing.T) {
	sender := newCaptureSender()
	n := NewTimerNotifier(sender)
	defer n.Shutdown()

	n.Schedule(uuid.New(), time.Now().Add(10*time.Millisecond), "dose due", "take it")

	select {
	case <-sender.fired:
	case <-time.After(time.Second):
		t.Fatal("reminder did not fire")
	}

	// The fired timer must be removed from the registry.
	deadline := time.Now().Add(time.Second)
	for n.Pending() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if n.Pending() != 0 {
		t.Errorf("Pending() = %d after fire, want 0", n.Pending())
	}
}

func TestTimerNotifier_CancelStopsReminder(t *testing.T) {
	sender := newCaptureSender()
	n := NewTimerNotifier(sender)
	defer n.Shutdown()

	id := uuid.New()
	n.Schedule(id, time.Now().Add(50*time.Millisecond), "dose due", "take it")
	n.Cancel(id)

	time.Sleep(150 * time.Millisecond)
	if sender.count() != 0 {
		t.Errorf("cancelled reminder fired %d times", sender.count())
	}
	if n.Pending() != 0 {
		t.Errorf("Pending() = %d after cancel, want 0", n.Pending())
	}
}

func TestTimerNotifier_RescheduleReplacesTimer(t *testing.T) {
	sender := newCaptureSender()
	n := NewTimerNotifier(sender)
	defer n.Shutdown()

	id := uuid.New()
	n.Schedule(id, time.Now().Add(time.Hour), "first", "dose")
	n.Schedule(id, time.Now().Add(time.Hour), "second", "dose")

	if n.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1 after re-registering the same id", n.Pending())
	}
}

func TestTimerNotifier_CancelUnknownIsNoop(t *testing.T) {
	n := NewTimerNotifier(newCaptureSender())
	defer n.Shutdown()
	n.Cancel(uuid.New())
}
