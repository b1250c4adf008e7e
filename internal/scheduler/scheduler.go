package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Refresher re-runs the widget's current search.
type Refresher interface {
	Refresh() bool
}

// Scheduler periodically refreshes the widget's current search.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Refresher
	interval  time.Duration
}

// New creates a new Scheduler. A non-positive interval disables it.
func New(interval time.Duration, target Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		target:    target,
		interval:  interval,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: refresh interval not set; periodic refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		if !s.target.Refresh() {
			log.Println("scheduler: refresh skipped; search in flight or no query yet")
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
