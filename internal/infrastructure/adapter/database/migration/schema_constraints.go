package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// SchemaConstraints installs PostgreSQL indexes and checks that mirror the
// domain invariants of a saved duration
type SchemaConstraints struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSchemaConstraints creates a new schema constraints installer
func NewSchemaConstraints(db *gorm.DB, logger coreport.Logger) *SchemaConstraints {
	return &SchemaConstraints{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the lookup indexes
func (s *SchemaConstraints) CreateIndexes(ctx context.Context) error {
	s.logger.Info("Creating saved duration indexes", nil)

	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_saved_durations_name ON saved_durations (name)`,
		`CREATE INDEX IF NOT EXISTS idx_saved_durations_created_at ON saved_durations (created_at)`,
	}
	return s.exec(ctx, statements)
}

// CreateCheckConstraints rejects negative quantities and unknown unit names at the database level
func (s *SchemaConstraints) CreateCheckConstraints(ctx context.Context) error {
	s.logger.Info("Creating saved duration check constraints", nil)

	exists, err := s.constraintExists(ctx, "chk_saved_durations_quantity")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	statements := []string{
		`ALTER TABLE saved_durations ADD CONSTRAINT chk_saved_durations_quantity CHECK (quantity >= 0)`,
		fmt.Sprintf(`ALTER TABLE saved_durations ADD CONSTRAINT chk_saved_durations_unit CHECK (unit IN (%s))`, unitNameList()),
	}
	return s.exec(ctx, statements)
}

func (s *SchemaConstraints) exec(ctx context.Context, statements []string) error {
	for _, statement := range statements {
		if err := s.db.WithContext(ctx).Exec(statement).Error; err != nil {
			s.logger.Error("Failed to apply schema statement", map[string]any{
				"statement": statement,
				"error":     err.Error(),
			})
			return err
		}
	}
	return nil
}

func (s *SchemaConstraints) constraintExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.table_constraints
		WHERE table_name = 'saved_durations' AND constraint_name = ?
	`, name).Scan(&count).Error
	if err != nil {
		s.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}

// unitNameList renders the unit catalog as a quoted SQL list
func unitNameList() string {
	units := entity.Units()
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = "'" + u.String() + "'"
	}
	return strings.Join(quoted, ", ")
}
