package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuslabs/campus-events-api/pkg/jobs"
)

type rejectedEventDeleter interface {
	DeleteIfRejected(ctx context.Context, id int64) (bool, error)
}

// PurgeService removes rejected events in the background. It revives the
// status-conditional delete an earlier revision applied inline on rejection;
// the worker is flag-gated and off by default.
type PurgeService struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewPurgeService constructs the purge worker over the shared job queue.
func NewPurgeService(events rejectedEventDeleter, workers int, logger *zap.Logger) *PurgeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PurgeService{logger: logger}
	s.queue = jobs.NewQueue("event-purge", func(ctx context.Context, job jobs.Job) error {
		id, ok := job.Payload.(int64)
		if !ok {
			return fmt.Errorf("unexpected purge payload %T", job.Payload)
		}
		deleted, err := events.DeleteIfRejected(ctx, id)
		if err != nil {
			return err
		}
		if deleted {
			logger.Info("purged rejected event", zap.Int64("event_id", id))
		}
		return nil
	}, jobs.QueueConfig{Workers: workers, Logger: logger})
	return s
}

// Start begins consuming purge jobs.
func (s *PurgeService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the worker pool.
func (s *PurgeService) Stop() {
	s.queue.Stop()
}

// EnqueueEvent schedules an event for conditional deletion.
func (s *PurgeService) EnqueueEvent(id int64) error {
	return s.queue.Enqueue(jobs.Job{Type: "purge-rejected-event", Payload: id})
}
