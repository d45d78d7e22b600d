package appointments

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/constvars"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JanitorWorker purges CANCELLED appointments older than the retention window
// so the remote API's event set stays bounded. A redis leader lock keeps the
// purge to a single replica per tick.
type JanitorWorker struct {
	EventClient   contracts.EventAPIClient
	Locker        contracts.LockerService
	AuditQueue    contracts.AuditQueueService
	CronSpec      string
	RetentionDays int
	LockTTL       time.Duration
	Log           *zap.Logger

	scheduler *cron.Cron
}

func NewJanitorWorker(
	eventClient contracts.EventAPIClient,
	locker contracts.LockerService,
	auditQueue contracts.AuditQueueService,
	cronSpec string,
	retentionDays int,
	lockTTL time.Duration,
	logger *zap.Logger,
) *JanitorWorker {
	return &JanitorWorker{
		EventClient:   eventClient,
		Locker:        locker,
		AuditQueue:    auditQueue,
		CronSpec:      cronSpec,
		RetentionDays: retentionDays,
		LockTTL:       lockTTL,
		Log:           logger,
	}
}

func (w *JanitorWorker) Start() error {
	w.scheduler = cron.New()
	_, err := w.scheduler.AddFunc(w.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.LockTTL)
		defer cancel()
		if err := w.RunOnce(ctx); err != nil {
			w.Log.Error("janitorWorker tick failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	w.scheduler.Start()
	w.Log.Info("janitorWorker started",
		zap.String("cron_spec", w.CronSpec),
		zap.Int("retention_days", w.RetentionDays),
	)
	return nil
}

func (w *JanitorWorker) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}

// RunOnce performs one purge pass. Losing the leader election is a normal
// outcome, not an error.
func (w *JanitorWorker) RunOnce(ctx context.Context) error {
	acquired, lockValue, err := w.Locker.TryLock(ctx, constvars.JanitorLeaderLockKey, w.LockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		w.Log.Info("janitorWorker skipping tick, another replica holds the lock")
		return nil
	}
	defer func() {
		if err := w.Locker.Unlock(ctx, constvars.JanitorLeaderLockKey, lockValue); err != nil {
			w.Log.Warn("janitorWorker failed to release leader lock", zap.Error(err))
		}
	}()

	cutoff := time.Now().UTC().AddDate(0, 0, -w.RetentionDays)
	events, err := w.EventClient.FindAll(ctx, janitorCriteria(cutoff))
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(events))
	for _, event := range events {
		if event.Status == constvars.EventStatusCancelled && event.End.Before(cutoff) {
			ids = append(ids, event.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if err := w.EventClient.DeleteBatch(ctx, ids); err != nil {
		return err
	}

	if err := w.AuditQueue.Publish(ctx, contracts.AuditMessage{
		Action: constvars.AuditActionEventsPurged,
		Actor:  "janitor",
		Detail: fmt.Sprintf("purged %d cancelled events older than %s", len(ids), cutoff.Format(constvars.DateOnlyLayout)),
	}); err != nil {
		w.Log.Error("janitorWorker failed to publish audit message", zap.Error(err))
	}

	w.Log.Info("janitorWorker purged cancelled events",
		zap.Int(constvars.LoggingEventCountKey, len(ids)),
		zap.String(constvars.LoggingEndDateKey, cutoff.Format(constvars.DateOnlyLayout)),
	)
	return nil
}

func janitorCriteria(cutoff time.Time) scheduling.FilterCriteria {
	return scheduling.FilterCriteria{
		Type:    constvars.EventTypeCita,
		Status:  constvars.EventStatusCancelled,
		EndDate: cutoff,
	}
}
