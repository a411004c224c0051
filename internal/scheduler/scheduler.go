package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/aeronav/flightroutes/internal/loader"
	"github.com/aeronav/flightroutes/internal/route"
)

// Scheduler periodically rebuilds the dataset from its inputs and swaps the
// fresh snapshot into the route service. Each rebuild happens fully off to
// the side; queries keep reading the old snapshot until the swap.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *route.Service
	builder   *loader.Builder
	paths     loader.Paths
	interval  time.Duration
}

// New creates a new Scheduler.
func New(service *route.Service, builder *loader.Builder, paths loader.Paths, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		builder:   builder,
		paths:     paths,
		interval:  interval,
	}
}

// Start schedules the periodic reload job and starts the underlying
// scheduler. A zero interval disables reloading.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: reload disabled; dataset loaded once")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		log.Println("scheduler: running dataset reload job")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		ds, err := s.builder.Build(ctx, s.paths)
		if err != nil {
			// Keep serving the last good snapshot.
			log.Printf("scheduler: dataset reload failed: %v", err)
			return
		}
		s.service.Swap(ds)
		log.Println("scheduler: completed dataset reload job")
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
