// pkg/dialects/sqlite/sqlite_test.go
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDialect(t *testing.T) {
	d := &sqliteDialect{}
	assert.Equal(t, "sqlite", d.Name())
	assert.Equal(t, "sqlite3", d.DriverName())
	assert.Equal(t, `"users"`, d.Quote("users"))
	assert.Equal(t, `"we""ird"`, d.Quote(`we"ird`))
	assert.Equal(t, "?1", d.BindVar(1))
	assert.Equal(t, "?3", d.BindVar(3))
}
