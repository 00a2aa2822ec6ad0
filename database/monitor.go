package database

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MonitorConnections logs pool statistics every interval while more than
// maxInUse connections are busy. It returns when ctx is done.
func MonitorConnections(ctx context.Context, db *gorm.DB, log *zap.Logger, interval time.Duration, maxInUse int) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("connection monitor disabled", zap.Error(err))
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			if stats.InUse > maxInUse {
				log.Warn("database connection pool busy",
					zap.Int("in_use", stats.InUse),
					zap.Int("idle", stats.Idle),
					zap.Int("open", stats.OpenConnections),
					zap.Int64("wait_count", stats.WaitCount),
				)
			}
		}
	}
}
