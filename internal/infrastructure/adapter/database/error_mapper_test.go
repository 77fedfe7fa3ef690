package database

import (
	"context"
	"errors"
	"testing"

	domainErr "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"Record not found", gorm.ErrRecordNotFound, domainErr.ErrDurationNotFound},
		{"Unique violation", errors.New(`ERROR: duplicate key value violates unique constraint "idx_saved_durations_name"`), domainErr.ErrDuplicateDuration},
		{"Check violation", errors.New(`new row violates check constraint "chk_saved_durations_quantity"`), domainErr.ErrConstraintViolation},
		{"Connection refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"Timeout", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"Anything else", errors.New("syntax error at or near"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "create"), tc.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "create"))
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeSavedDuration), domainErr.ErrDurationNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeMigration), domainErr.ErrInternalServer)
}
