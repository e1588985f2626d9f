package notify

import (
	"context"
	"log"
)

// LogSender writes reminders to the process log. Used when no delivery
// channel is configured so reminder scheduling still succeeds end to end.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, title, body string) error {
	log.Printf("reminder: %s: %s", title, body)
	return nil
}
