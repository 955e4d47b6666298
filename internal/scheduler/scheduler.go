package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/askmeteo/weather-chat/internal/chat"
)

// Scheduler periodically sweeps stale recent-search entries out of the store.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     chat.Store
	interval  time.Duration
	maxAge    time.Duration
	keep      int
}

// New creates a new Scheduler. keep is the number of newest searches the
// sweep always retains.
func New(store chat.Store, interval, maxAge time.Duration, keep int) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		store:     store,
		interval:  interval,
		maxAge:    maxAge,
		keep:      keep,
	}
}

// Start schedules the periodic sweep and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.maxAge <= 0 {
		log.Println("scheduler: no search retention configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		removed, err := s.store.PruneSearches(s.maxAge, s.keep)
		if err != nil {
			log.Printf("scheduler: search sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("scheduler: swept %d stale recent searches", removed)
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
