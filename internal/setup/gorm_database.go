package setup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bornholm/maven/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormlite.Open(conf.Storage.Database.DSN), &gorm.Config{
		Logger: logger.New(gormLogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(conf.Logger.Level),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// sqlite only supports one writer at a time
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "database opened", slog.String("dsn", conf.Storage.Database.DSN))

	return db, nil
})

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}

// gormLogWriter routes gorm's messages through the default slog logger.
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}
