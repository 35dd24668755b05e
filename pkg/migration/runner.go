// pkg/migration/runner.go
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/russenger/modelsql/pkg/compiler"
	"github.com/russenger/modelsql/pkg/exec"
	"github.com/russenger/modelsql/pkg/schema"
)

// Runner applies the DDL of an explicitly assembled, ordered model list.
// There is no self-registration: the application decides which models exist
// and in which order their tables are created.
type Runner struct {
	session *exec.Session
	table   string
	models  []*schema.Definition
	logger  *slog.Logger
}

// Record is one applied-migration entry from the history table.
type Record struct {
	Name      string
	AppliedAt string
}

// NewRunner creates a runner recording history in the given table.
func NewRunner(session *exec.Session, table string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{session: session, table: table, logger: logger}
}

// Add appends models to the runner, preserving order.
func (r *Runner) Add(defs ...*schema.Definition) {
	r.models = append(r.models, defs...)
}

// historyDefinition describes the history table with the same declarative
// model the runner migrates, so its DDL comes from the same compiler.
func historyDefinition(table string) *schema.Definition {
	return &schema.Definition{
		Name: table,
		Fields: []*schema.FieldDescriptor{
			{Name: "name", Type: schema.TypeString, PrimaryKey: true},
			{Name: "applied_at", Type: schema.TypeDateTime},
		},
	}
}

// Apply creates the history table, then compiles and executes each model's
// DDL in order. The DDL itself is idempotent ("if not exists"); the history
// table records when a model was first applied.
func (r *Runner) Apply(ctx context.Context) error {
	historyArt, err := compiler.Compile(historyDefinition(r.table))
	if err != nil {
		return fmt.Errorf("compiling history table: %w", err)
	}
	if err := r.session.Migrate(ctx, historyArt); err != nil {
		return err
	}

	applied, err := r.appliedSet(ctx)
	if err != nil {
		return err
	}

	for _, def := range r.models {
		art, err := compiler.Compile(def)
		if err != nil {
			return fmt.Errorf("compiling model %s: %w", def.Name, err)
		}
		if err := r.session.Migrate(ctx, art); err != nil {
			return err
		}
		if applied[def.Name] {
			r.logger.Debug("model already recorded", "model", def.Name)
			continue
		}
		values := map[string]any{
			"name":       def.Name,
			"applied_at": time.Now().UTC().Format(time.RFC3339),
		}
		if err := r.session.Create(ctx, historyArt, values); err != nil {
			return fmt.Errorf("recording migration %s: %w", def.Name, err)
		}
		r.logger.Info("applied model", "model", def.Name)
	}
	return nil
}

// Status returns the applied-migration records ordered by name.
func (r *Runner) Status(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf("select name, applied_at from %s order by name;", r.table)
	rows, err := r.session.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading migration history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Name, &rec.AppliedAt); err != nil {
			return nil, fmt.Errorf("scanning migration record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Runner) appliedSet(ctx context.Context) (map[string]bool, error) {
	records, err := r.Status(ctx)
	if err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(records))
	for _, rec := range records {
		applied[rec.Name] = true
	}
	return applied, nil
}
