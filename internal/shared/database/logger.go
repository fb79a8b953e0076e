package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fussballmanager/go-api-server/internal/config"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// QueryObserver receives the timing of every executed statement (metrics)
type QueryObserver interface {
	ObserveQuery(operation string, elapsed time.Duration, err error)
}

// GormLogger adapts slog for GORM and forwards statement timings to an optional observer
type GormLogger struct {
	logger               *slog.Logger
	observer             QueryObserver
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
	HideSqlInLog         bool
	LogLevel             gormlogger.LogLevel
}

// newLogger creates a new GORM logger with slog
func newLogger(cfg *config.Config, observer QueryObserver) gormlogger.Interface {
	var logLevel gormlogger.LogLevel

	// local/dev = info level, prod = error level only
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	} else {
		logLevel = gormlogger.Info
	}

	return &GormLogger{
		logger:               slog.With("component", "gorm"),
		observer:             observer,
		SlowThreshold:        200 * time.Millisecond,
		IgnoreRecordNotFound: true,               // not logging db level not found
		HideSqlInLog:         cfg.IsProduction(), // Hide query parameters in production
		LogLevel:             logLevel,
	}
}

// LogMode sets the log level
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries with timing information
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	notFound := errors.Is(err, gorm.ErrRecordNotFound)
	if l.observer != nil {
		observed := err
		if notFound {
			observed = nil
		}
		l.observer.ObserveQuery(statementOperation(sql), elapsed, observed)
	}

	if l.LogLevel <= gormlogger.Silent {
		return
	}

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!notFound || !l.IgnoreRecordNotFound):
		l.logger.ErrorContext(ctx, "Database query error",
			"error", err,
			"elapsed", elapsed.String(),
			"rows", rows,
			"sql", l.sqlForLog(sql),
		)

	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= gormlogger.Warn:
		l.logger.WarnContext(ctx, "Slow SQL query detected",
			"elapsed", elapsed.String(),
			"threshold", l.SlowThreshold.String(),
			"rows", rows,
			"sql", l.sqlForLog(sql),
		)

	case l.LogLevel >= gormlogger.Info:
		l.logger.DebugContext(ctx, "SQL query executed",
			"elapsed", elapsed.String(),
			"rows", rows,
			"sql", l.sqlForLog(sql),
		)
	}
}

func (l *GormLogger) sqlForLog(sql string) string {
	if l.HideSqlInLog {
		return statementOperation(sql)
	}
	return sql
}

// statementOperation returns the leading SQL keyword (SELECT, INSERT, ...)
func statementOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
