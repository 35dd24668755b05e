// pkg/dialects/sqlserver/sqlserver_test.go
package sqlserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLServerDialect(t *testing.T) {
	d := &sqlserverDialect{}
	assert.Equal(t, "sqlserver", d.Name())
	assert.Equal(t, "sqlserver", d.DriverName())
	assert.Equal(t, "[users]", d.Quote("users"))
	assert.Equal(t, "@p1", d.BindVar(1))
	assert.Equal(t, "@p2", d.BindVar(2))
}
