package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"localnews/internal/config"
	"localnews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sqliteConfig(t *testing.T) config.Database {
	return config.Database{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "news.db") + "?_busy_timeout=5000",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
}

func TestConnectReusesHandle(t *testing.T) {
	t.Cleanup(func() { _ = Close() })
	cfg := sqliteConfig(t)

	first, err := Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	second, err := Connect(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NoError(t, Ping(context.Background(), first))
}

func TestConnectDoesNotCacheFailure(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	_, err := Connect(config.Database{Driver: "oracle", DSN: "x"}, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, DB)

	db, err := Connect(sqliteConfig(t), zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestMigrateCreatesUniqueSlugIndex(t *testing.T) {
	db, err := Open(sqliteConfig(t), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, MigrateDatabase(db, zap.NewNop()))

	assert.True(t, db.Migrator().HasTable(&models.Article{}))
	assert.True(t, db.Migrator().HasIndex(&models.Article{}, "Slug"))

	require.NoError(t, db.Create(&models.Article{Title: "a", Slug: "same", Content: "x"}).Error)
	err = db.Create(&models.Article{Title: "b", Slug: "same", Content: "y"}).Error
	assert.Error(t, err)
}

func TestMonitorConnectionsLogsBusyPoolUntilCancelled(t *testing.T) {
	db, err := Open(sqliteConfig(t), zap.NewNop())
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		MonitorConnections(ctx, db, zap.New(core), 5*time.Millisecond, -1)
		close(done)
	}()

	assert.Eventually(t, func() bool { return logs.Len() > 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
	assert.Equal(t, "database connection pool busy", logs.All()[0].Message)
}
