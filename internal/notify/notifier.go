package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender delivers one reminder message. Delivery is best-effort: a failed
// send is logged and dropped, never surfaced to the caller.
type Sender interface {
	Send(ctx context.Context, title, body string) error
}

// Notifier is the reminder sink. Reminders are registered under the owning
// schedule's id so a dose resolution or a medicine deletion can cancel them.
// Absence of a delivery channel must not block core operations.
type Notifier interface {
	Schedule(id uuid.UUID, fireAt time.Time, title, body string)
	Cancel(id uuid.UUID)
}

// TimerNotifier keeps an in-process timer per registered reminder. Timers
// live only for the current process: a restart drops them, and the due-check
// poller re-surfaces anything still pending.
type TimerNotifier struct {
	sender Sender

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

func NewTimerNotifier(sender Sender) *TimerNotifier {
	return &TimerNotifier{
		sender: sender,
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Schedule registers a reminder to fire at the given instant. Instants in
// the past are ignored; re-registering an id replaces its timer, keeping at
// most one active reminder per pending schedule.
func (n *TimerNotifier) Schedule(id uuid.UUID, fireAt time.Time, title, body string) {
	delay := time.Until(fireAt)
	if delay <= 0 {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.timers[id]; ok {
		existing.Stop()
	}

	n.timers[id] = time.AfterFunc(delay, func() {
		n.mu.Lock()
		delete(n.timers, id)
		n.mu.Unlock()

		if err := n.sender.Send(context.Background(), title, body); err != nil {
			log.Printf("reminder %s delivery failed: %v", id, err)
		}
	})
}

// Cancel stops the reminder registered under the schedule id, if any.
// Cancelling an unknown or already-fired id is a no-op.
func (n *TimerNotifier) Cancel(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
}

// Shutdown stops every outstanding timer.
func (n *TimerNotifier) Shutdown() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
}

// Pending reports how many reminders are currently registered.
func (n *TimerNotifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.timers)
}
