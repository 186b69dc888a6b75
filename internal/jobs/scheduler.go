package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/config"
	"tokoaing-store/internal/repository"
)

// Scheduler runs the background maintenance jobs. Currently a single
// daily purge of read private messages past the retention window.
type Scheduler struct {
	cron        *cron.Cron
	messageRepo repository.MessageRepository
	retention   config.Retention
}

func NewScheduler(messageRepo repository.MessageRepository, retention config.Retention) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		messageRepo: messageRepo,
		retention:   retention,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.retention.PurgeSchedule, func() {
		cutoff := time.Now().Add(-s.retention.ReadMessageMaxAge)
		purged, err := s.messageRepo.DeleteReadOlderThan(ctx, cutoff)
		if err != nil {
			log.WithError(err).Error("message retention purge failed")
			return
		}
		if purged > 0 {
			log.WithField("purged", purged).Info("purged read messages past retention")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("scheduler stopped")
}
