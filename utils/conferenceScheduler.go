package utils

import (
	"time"

	"eduportal/logger"
	"eduportal/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartConferenceScheduler runs the conference sweep on the given cron spec
// (e.g. "@every 10m") and returns the started scheduler.
func StartConferenceScheduler(spec string) (*cron.Cron, error) {
	logger.Log.Info("initializing conference scheduler", zap.String("spec", spec))

	c := cron.New()
	if _, err := c.AddFunc(spec, SweepConferences); err != nil {
		return nil, err
	}

	c.Start()
	logger.Log.Info("conference scheduler started")
	return c, nil
}

// SweepConferences marks scheduled conferences that already ended as finished.
func SweepConferences() {
	n, err := services.FinishPastConferences(time.Now())
	if err != nil {
		logger.Log.Error("conference sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Log.Info("conferences finished", zap.Int64("count", n))
	}
}
