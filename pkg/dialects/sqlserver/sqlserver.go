// pkg/dialects/sqlserver/sqlserver.go
package sqlserver

import (
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb" // register driver

	"github.com/russenger/modelsql/pkg/dialects"
	"github.com/russenger/modelsql/pkg/dialects/common"
)

// sqlserverDialect implements common.Dialect for SQL Server.
type sqlserverDialect struct{}

func (d *sqlserverDialect) Name() string       { return "sqlserver" }
func (d *sqlserverDialect) DriverName() string { return "sqlserver" }

func (d *sqlserverDialect) Quote(identifier string) string {
	return "[" + strings.ReplaceAll(identifier, "]", "]]") + "]"
}

func (d *sqlserverDialect) BindVar(i int) string {
	return fmt.Sprintf("@p%d", i)
}

func init() {
	dialects.Register("sqlserver", func() common.Dialect {
		return &sqlserverDialect{}
	})
}
