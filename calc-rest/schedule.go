package main

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartCleanSchedule runs cleaner every interval until the returned
// scheduler is shut down.
func StartCleanSchedule(cleaner *Cleaner, interval time.Duration, logger *zap.Logger) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	job, err := scheduler.NewJob(gocron.DurationJob(interval), gocron.NewTask(func() {
		cleaner.cleanTask()
	}))
	if err != nil {
		scheduler.Shutdown()
		return nil, err
	}
	logger.Info("clean job scheduled", zap.String("job", job.ID().String()), zap.Duration("interval", interval))
	scheduler.Start()
	return scheduler, nil
}
