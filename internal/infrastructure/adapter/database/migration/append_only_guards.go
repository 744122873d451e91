package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// appendOnlyTables are never updated or deleted by the application
var appendOnlyTables = []string{"coin_transactions", "coin_value_history"}

// AppendOnlyGuards installs triggers rejecting UPDATE and DELETE on the ledger tables
type AppendOnlyGuards struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAppendOnlyGuards creates a new migration instance
func NewAppendOnlyGuards(db *gorm.DB, logger coreport.Logger) *AppendOnlyGuards {
	return &AppendOnlyGuards{
		db:     db,
		logger: logger,
	}
}

func triggerName(table string) string {
	return "trg_" + table + "_append_only"
}

// Run executes the migration
func (m *AppendOnlyGuards) Run(ctx context.Context) error {
	m.logger.Info("Installing append-only guards on ledger tables", nil)

	existing, err := m.existingTriggers(ctx)
	if err != nil {
		return err
	}

	if m.db.Dialector.Name() == dialectPostgres {
		if err := m.db.WithContext(ctx).Exec(`
			CREATE OR REPLACE FUNCTION coin_ledger_reject_mutation() RETURNS trigger AS $$
			BEGIN
				RAISE EXCEPTION '% is append-only', TG_TABLE_NAME;
			END;
			$$ LANGUAGE plpgsql`).Error; err != nil {
			m.logger.Error("Failed to create guard function", map[string]any{"error": err.Error()})
			return err
		}
	}

	for _, table := range appendOnlyTables {
		name := triggerName(table)
		if existing[name] {
			continue
		}

		for _, stmt := range m.triggerSQL(table, name) {
			if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
				m.logger.Error("Failed to install append-only trigger", map[string]any{
					"table": table,
					"error": err.Error(),
				})
				return err
			}
		}
	}

	m.logger.Info("Append-only guards installed", nil)
	return nil
}

func (m *AppendOnlyGuards) triggerSQL(table, name string) []string {
	if m.db.Dialector.Name() == dialectPostgres {
		return []string{fmt.Sprintf(`CREATE TRIGGER %s BEFORE UPDATE OR DELETE ON %s
			FOR EACH ROW EXECUTE FUNCTION coin_ledger_reject_mutation()`, name, table)}
	}
	// SQLite has no combined UPDATE OR DELETE trigger
	return []string{
		fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS %[1]s BEFORE UPDATE ON %[2]s
			BEGIN SELECT RAISE(ABORT, '%[2]s is append-only'); END`, name, table),
		fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS %[1]s_delete BEFORE DELETE ON %[2]s
			BEGIN SELECT RAISE(ABORT, '%[2]s is append-only'); END`, name, table),
	}
}

// existingTriggers lists the guard triggers already present
func (m *AppendOnlyGuards) existingTriggers(ctx context.Context) (map[string]bool, error) {
	var names []string
	var query string
	if m.db.Dialector.Name() == dialectPostgres {
		query = `SELECT tgname FROM pg_trigger WHERE NOT tgisinternal`
	} else {
		query = `SELECT name FROM sqlite_master WHERE type = 'trigger'`
	}

	if err := m.db.WithContext(ctx).Raw(query).Scan(&names).Error; err != nil {
		m.logger.Error("Failed to list triggers", map[string]any{"error": err.Error()})
		return nil, err
	}

	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}
	return existing, nil
}
