// pkg/dialects/mysql/mysql.go
package mysql

import (
	"strings"

	_ "github.com/go-sql-driver/mysql" // register driver

	"github.com/russenger/modelsql/pkg/dialects"
	"github.com/russenger/modelsql/pkg/dialects/common"
)

// mysqlDialect implements common.Dialect for MySQL/MariaDB. MySQL placeholders
// are positional and unnumbered; rewriting works because every statement the
// compiler emits binds each parameter exactly once, in order.
type mysqlDialect struct{}

func (d *mysqlDialect) Name() string       { return "mysql" }
func (d *mysqlDialect) DriverName() string { return "mysql" }

func (d *mysqlDialect) Quote(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

func (d *mysqlDialect) BindVar(i int) string {
	return "?"
}

func init() {
	dialects.Register("mysql", func() common.Dialect {
		return &mysqlDialect{}
	})
}
