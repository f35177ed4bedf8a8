package services

import (
	"context"

	"github.com/madflojo/tasks"
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/upstream"
)

const rateWarmupTaskID = "fx-rate-warmup"

// SchedulerService keeps the USD->KRW cache warm so request paths rarely pay
// for a cold fetch. A failed refresh only logs; the cache keeps serving the
// previous value until its TTL lapses.
type SchedulerService interface {
	ScheduleRateWarmup()
	DropTask(taskID string)
}

func NewSchedulerService(cfg *config.Config, fxSource upstream.FXSource, scheduler *tasks.Scheduler, log *zap.Logger) SchedulerService {
	return &schedulerService{
		service:   service{cfg: cfg, fxSource: fxSource, log: log},
		scheduler: scheduler,
	}
}

type schedulerService struct {
	service
	scheduler *tasks.Scheduler
}

func (s *schedulerService) ScheduleRateWarmup() {
	err := s.scheduler.AddWithID(rateWarmupTaskID, &tasks.Task{
		Interval: s.cfg.RateCacheTTL,
		TaskFunc: func() error {
			rate, err := s.fxSource.Refresh(context.Background())
			if err != nil {
				s.log.Error("refreshing fx rate cache", zap.Error(err))
				return nil
			}
			s.log.Debug("fx rate cache refreshed",
				zap.Float64("rate", rate.Rate),
				zap.String("source", rate.Source))
			return nil
		},
	})
	if err != nil {
		s.log.Error("scheduling fx rate warmup", zap.Error(err))
	}
}

func (s *schedulerService) DropTask(taskID string) {
	s.scheduler.Del(taskID)
}
