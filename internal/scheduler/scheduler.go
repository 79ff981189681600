package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily reminder scan.
type Scheduler struct {
	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
	scanFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetScanFunction sets the function invoked on each tick.
func (s *Scheduler) SetScanFunction(f func(ctx context.Context) error) {
	s.scanFunc = f
}

// Start registers the cron entry and starts the scheduler. spec is a
// standard 5-field cron expression.
func (s *Scheduler) Start(spec string) error {
	if s.scanFunc == nil {
		log.Println("⚠️ Scan function not set, scheduler will not run reminders")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		log.Printf("🕘 Triggered reminder scan (%s)", spec)
		if err := s.scanFunc(s.ctx); err != nil {
			log.Printf("❌ Reminder scan failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("📅 Scheduler started - reminder scan on %q", spec)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

// IsRunning reports whether any entries are registered.
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
