// pkg/exec/session.go
package exec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/russenger/modelsql/pkg/compiler"
	"github.com/russenger/modelsql/pkg/config"
	"github.com/russenger/modelsql/pkg/dialects"
	"github.com/russenger/modelsql/pkg/dialects/common"
)

var (
	// ErrMissingPrimaryKey is returned when an update or delete is attempted
	// on artifacts compiled from a model with no primary-key field.
	ErrMissingPrimaryKey = errors.New("model has no primary key")

	// ErrMissingValue is returned when the caller omits a value for a field
	// named in the operation plan. There are no implicit defaults at
	// execution time; every planned field must be supplied.
	ErrMissingValue = errors.New("missing value for planned field")
)

// Session turns compiled artifacts into bound statements against one
// connection pool. It owns placeholder translation: the compiler's canonical
// "?N" markers are rewritten to the dialect's native syntax before dispatch.
type Session struct {
	db      *sql.DB
	dialect common.Dialect
	logger  *slog.Logger
}

// Open connects to the backend selected by cfg.Dialect, applies pool
// settings and verifies connectivity.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*Session, error) {
	factory := dialects.Get(cfg.Dialect)
	if factory == nil {
		return nil, fmt.Errorf("unknown dialect %q (registered: %s)",
			cfg.Dialect, strings.Join(dialects.Registered(), ", "))
	}
	if cfg.DSN == "" {
		return nil, errors.New("database DSN is required in configuration")
	}
	dialect := factory()

	db, err := sql.Open(dialect.DriverName(), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", dialect.Name(), err)
	}
	if cfg.Pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Pool.MaxIdleConns)
	}
	if cfg.Pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Pool.MaxOpenConns)
	}
	if cfg.Pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.Pool.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect.Name(), err)
	}

	return NewSession(db, dialect, logger), nil
}

// NewSession wraps an existing pool. Useful for tests and callers that manage
// their own *sql.DB.
func NewSession(db *sql.DB, dialect common.Dialect, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{db: db, dialect: dialect, logger: logger}
}

func (s *Session) Close() error { return s.db.Close() }

func (s *Session) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Session) Dialect() common.Dialect { return s.dialect }

var placeholderPattern = regexp.MustCompile(`\?(\d+)`)

// rewrite substitutes canonical placeholders with the dialect's bind syntax.
func (s *Session) rewrite(query string) string {
	return placeholderPattern.ReplaceAllStringFunc(query, func(marker string) string {
		n, _ := strconv.Atoi(marker[1:])
		return s.dialect.BindVar(n)
	})
}

// Migrate executes the model's DDL. The statement carries "if not exists", so
// repeated runs are harmless.
func (s *Session) Migrate(ctx context.Context, art *compiler.Artifacts) error {
	s.logger.Debug("migrate", "model", art.Model, "ddl", art.DDL)
	if _, err := s.db.ExecContext(ctx, art.DDL); err != nil {
		return fmt.Errorf("migrate %s: %w", art.Model, err)
	}
	return nil
}

// Create binds the create plan to the supplied values and inserts one row.
// Values are matched to the plan by field name, in plan order.
func (s *Session) Create(ctx context.Context, art *compiler.Artifacts, values map[string]any) error {
	if len(art.CreateArgs) == 0 {
		return fmt.Errorf("create %s: plan has no insertable fields", art.Model)
	}
	args, err := planValues(art.Model, art.CreateArgs, values)
	if err != nil {
		return err
	}

	markers := make([]string, len(art.CreateArgs))
	for i := range art.CreateArgs {
		markers[i] = compiler.Placeholder(i + 1)
	}
	query := fmt.Sprintf("insert into %s (%s) values (%s);",
		art.Model, strings.Join(art.CreateArgs, ", "), strings.Join(markers, ", "))

	return s.exec(ctx, "create", art.Model, query, args)
}

// Update binds the update plan plus the primary-key value and updates one
// row.
func (s *Session) Update(ctx context.Context, art *compiler.Artifacts, pk any, values map[string]any) error {
	if art.PrimaryKey == "" {
		return fmt.Errorf("update %s: %w", art.Model, ErrMissingPrimaryKey)
	}
	args, err := planValues(art.Model, art.UpdateArgs, values)
	if err != nil {
		return err
	}
	args = append(args, pk)

	assignments := make([]string, len(art.UpdateArgs))
	for i, name := range art.UpdateArgs {
		assignments[i] = name + "=" + compiler.Placeholder(i+1)
	}
	query := fmt.Sprintf("update %s set %s where %s=%s;",
		art.Model, strings.Join(assignments, ", "),
		art.PrimaryKey, compiler.Placeholder(len(art.UpdateArgs)+1))

	return s.exec(ctx, "update", art.Model, query, args)
}

// Delete removes the row identified by the primary-key value.
func (s *Session) Delete(ctx context.Context, art *compiler.Artifacts, pk any) error {
	if art.PrimaryKey == "" {
		return fmt.Errorf("delete %s: %w", art.Model, ErrMissingPrimaryKey)
	}
	return s.exec(ctx, "delete", art.Model, art.DeleteSQL, []any{pk})
}

// Query runs an arbitrary statement written with canonical placeholders.
func (s *Session) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rewrite(query), args...)
}

// Exec runs an arbitrary statement written with canonical placeholders.
func (s *Session) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rewrite(query), args...)
}

func (s *Session) exec(ctx context.Context, op, model, query string, args []any) error {
	bound := s.rewrite(query)
	s.logger.Debug(op, "model", model, "query", bound, "args", len(args))
	if _, err := s.db.ExecContext(ctx, bound, args...); err != nil {
		return fmt.Errorf("%s %s [%s]: %w", op, model, bound, err)
	}
	return nil
}

// planValues pairs an argument plan with runtime values, preserving plan
// order.
func planValues(model string, plan []string, values map[string]any) ([]any, error) {
	args := make([]any, 0, len(plan))
	for _, name := range plan {
		value, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w: %s", model, ErrMissingValue, name)
		}
		args = append(args, value)
	}
	return args, nil
}
