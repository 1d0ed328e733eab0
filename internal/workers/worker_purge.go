package workers

import (
	"context"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/robfig/cron/v3"
)

// purgeWorker deletes expired notifications on a cron schedule so the
// notifications table does not grow without bound.
type purgeWorker struct {
	notificationService service.NotificationService

	// schedule is a cron expression, e.g. "@hourly" or "0 */6 * * *".
	schedule string

	cron   *cron.Cron
	logger *logger.Logger
}

func newPurgeWorker(notificationService service.NotificationService, schedule string, logger *logger.Logger) *purgeWorker {
	return &purgeWorker{
		notificationService: notificationService,
		schedule:            schedule,
		cron:                cron.New(),
		logger:              logger,
	}
}

// Run registers the purge job and starts the cron scheduler in its own
// goroutine. It does not block.
func (p *purgeWorker) Run() {
	if _, err := p.cron.AddFunc(p.schedule, p.purge); err != nil {
		p.logger.Error().Err(err).Str("schedule", p.schedule).Msg("invalid purge schedule, worker disabled")
		return
	}

	p.logger.Info().Str("schedule", p.schedule).Msg("notification purge worker started")
	p.cron.Start()
}

func (p *purgeWorker) purge() {
	deleted, err := p.notificationService.PurgeExpired(context.Background())
	if err != nil {
		p.logger.Error().Err(err).Msg("expired notification purge failed")
		return
	}

	p.logger.Info().Int64("deleted", deleted).Msg("expired notifications purged")
}
