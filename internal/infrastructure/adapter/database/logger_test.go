package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/duration-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	gormlogger "gorm.io/gorm/logger"
)

func TestExtractQueryDetails(t *testing.T) {
	testCases := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "saved_durations" WHERE name = $1`, "SELECT", "SAVED_DURATIONS"},
		{`INSERT INTO "saved_durations" ("id","name") VALUES ($1,$2)`, "INSERT", "SAVED_DURATIONS"},
		{`UPDATE migration_versions SET details = $1`, "UPDATE", "MIGRATION_VERSIONS"},
		{`DELETE FROM "saved_durations" WHERE id = $1`, "DELETE", "SAVED_DURATIONS"},
		{`CREATE INDEX IF NOT EXISTS idx ON t (c)`, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.queryType, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}

func TestDatabaseLoggerTrace(t *testing.T) {
	ctx := context.Background()
	begin := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	query := func() (string, int64) { return `SELECT * FROM "saved_durations"`, 1 }

	t.Run("Errors are logged at error level", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Millisecond).Once()
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["table"] == "SAVED_DURATIONS" && fields["error"] == "connection reset"
		})).Once()

		NewDatabaseLogger(mockLogger, mockTime, "info").Trace(ctx, begin, query, errors.New("connection reset"))
	})

	t.Run("Record not found is a regular query", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Millisecond).Once()
		mockLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		NewDatabaseLogger(mockLogger, mockTime, "info").Trace(ctx, begin, query, errors.New("record not found"))
	})

	t.Run("Slow queries are warned about", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Second).Once()
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		NewDatabaseLogger(mockLogger, mockTime, "warn").Trace(ctx, begin, query, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(mockLogger, mockTime, "info").LogMode(gormlogger.Silent).Trace(ctx, begin, query, nil)
	})
}
