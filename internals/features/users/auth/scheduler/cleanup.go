package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"exeat_backend/internals/configs"
	helpersAuth "exeat_backend/internals/helpers/auth"
)

// StartBlacklistCleanupScheduler purges expired revocations on the given cron spec.
// The returned cron must be stopped on shutdown.
func StartBlacklistCleanupScheduler(bl helpersAuth.Blacklist, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() { RunBlacklistCleanup(bl) })
	if err != nil {
		return nil, err
	}
	c.Start()
	configs.Log().Info("token blacklist cleanup scheduled", zap.String("cron", spec))
	return c, nil
}

func RunBlacklistCleanup(bl helpersAuth.Blacklist) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := bl.PurgeExpired(ctx)
	if err != nil {
		configs.Log().Error("[CLEANUP] purge token_blacklist failed", zap.Error(err))
		return
	}
	configs.Log().Info("[CLEANUP] token_blacklist purged", zap.Int64("deleted", n))
}
