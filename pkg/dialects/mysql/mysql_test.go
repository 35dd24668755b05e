// pkg/dialects/mysql/mysql_test.go
package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLDialect(t *testing.T) {
	d := &mysqlDialect{}
	assert.Equal(t, "mysql", d.Name())
	assert.Equal(t, "mysql", d.DriverName())
	assert.Equal(t, "`users`", d.Quote("users"))
	assert.Equal(t, "?", d.BindVar(1))
	assert.Equal(t, "?", d.BindVar(5), "MySQL placeholders are unnumbered")
}
