// pkg/dialects/postgres/postgres.go
package postgres

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx database/sql driver

	"github.com/russenger/modelsql/pkg/dialects"
	"github.com/russenger/modelsql/pkg/dialects/common"
)

// postgresDialect implements common.Dialect for PostgreSQL through the pgx
// stdlib adapter.
type postgresDialect struct{}

func (d *postgresDialect) Name() string       { return "postgres" }
func (d *postgresDialect) DriverName() string { return "pgx" }

func (d *postgresDialect) Quote(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

func (d *postgresDialect) BindVar(i int) string {
	return fmt.Sprintf("$%d", i)
}

func init() {
	dialects.Register("postgres", func() common.Dialect {
		return &postgresDialect{}
	})
}
