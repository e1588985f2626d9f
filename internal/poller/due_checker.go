package poller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/notify"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// MedicineLookup resolves the medicine a due schedule belongs to.
type MedicineLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
}

// DueChecker periodically scans for pending doses whose instant has passed
// and announces each one once. The announced set lives in memory only, so a
// restart may re-announce doses that are still pending. Resolving a dose is
// the only durable acknowledgement.
type DueChecker struct {
	doseService service.DoseService
	medicines   MedicineLookup
	sender      notify.Sender
	interval    time.Duration
	now         func() time.Time

	cron *cron.Cron

	mu        sync.Mutex
	announced map[uuid.UUID]struct{}
}

func NewDueChecker(doseService service.DoseService, medicines MedicineLookup, sender notify.Sender, interval time.Duration) *DueChecker {
	return &DueChecker{
		doseService: doseService,
		medicines:   medicines,
		sender:      sender,
		interval:    interval,
		now:         func() time.Time { return time.Now().UTC() },
		announced:   make(map[uuid.UUID]struct{}),
	}
}

// Start schedules the periodic check. Returns an error when the interval
// cannot be registered.
func (c *DueChecker) Start(ctx context.Context) error {
	c.cron = cron.New()
	spec := fmt.Sprintf("@every %s", c.interval)
	if _, err := c.cron.AddFunc(spec, func() {
		if err := c.CheckOnce(ctx); err != nil {
			log.Printf("due check failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to register due check: %w", err)
	}
	c.cron.Start()
	return nil
}

// Stop halts the periodic check and waits for an in-flight run to finish.
func (c *DueChecker) Stop() {
	if c.cron == nil {
		return
	}
	<-c.cron.Stop().Done()
}

// CheckOnce runs a single scan. Safe to call concurrently with the cron
// schedule; the announced set deduplicates between runs.
func (c *DueChecker) CheckOnce(ctx context.Context) error {
	now := c.now()
	due, err := c.doseService.DuePending(ctx, now)
	if err != nil {
		return err
	}

	for _, sched := range due {
		if !c.markAnnounced(sched.ID) {
			continue
		}
		if err := c.announce(ctx, sched); err != nil {
			// Delivery is best-effort; unmark so the next run retries.
			c.unmark(sched.ID)
			log.Printf("due announce failed for %s: %v", sched.ID, err)
		}
	}
	return nil
}

func (c *DueChecker) announce(ctx context.Context, sched domain.Schedule) error {
	if c.sender == nil {
		return nil
	}
	title := "Missed dose"
	at := sched.ScheduledTime.Format("15:04")
	body := fmt.Sprintf("A dose scheduled for %s is still pending.", at)
	if c.medicines != nil {
		// Name the medicine when it still exists; the generic body covers
		// doses whose medicine was deleted between scan and announce.
		if med, err := c.medicines.GetByID(ctx, sched.MedicineID); err == nil {
			body = fmt.Sprintf("%s (%s) scheduled for %s is still pending.", med.Name, med.Dose, at)
		}
	}
	return c.sender.Send(ctx, title, body)
}

func (c *DueChecker) markAnnounced(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.announced[id]; ok {
		return false
	}
	c.announced[id] = struct{}{}
	return true
}

func (c *DueChecker) unmark(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.announced, id)
}
