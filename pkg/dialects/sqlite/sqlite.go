// pkg/dialects/sqlite/sqlite.go
package sqlite

import (
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // register driver

	"github.com/russenger/modelsql/pkg/dialects"
	"github.com/russenger/modelsql/pkg/dialects/common"
)

// sqliteDialect implements common.Dialect for SQLite. SQLite understands the
// canonical "?N" markers natively, so BindVar is an identity mapping.
type sqliteDialect struct{}

func (d *sqliteDialect) Name() string       { return "sqlite" }
func (d *sqliteDialect) DriverName() string { return "sqlite3" }

func (d *sqliteDialect) Quote(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

func (d *sqliteDialect) BindVar(i int) string {
	return fmt.Sprintf("?%d", i)
}

func init() {
	dialects.Register("sqlite", func() common.Dialect {
		return &sqliteDialect{}
	})
}
