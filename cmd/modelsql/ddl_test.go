// cmd/modelsql/ddl_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and captures its
// output streams.
func executeCommand(root *cobra.Command, args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags clears the persistent flag globals so they do not leak between
// tests.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile = ""
		manifestFile = ""
	})
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testConfig = `
database:
  dialect: sqlite
  dsn: "file:test.db?cache=shared"
`

const testManifest = `
models:
  - name: User
    fields:
      - name: id
        type: Serial
        primary_key: true
        auto: true
      - name: name
        type: String
        size: 50
        unique: true
      - name: email
        type: String
        nullable: true
      - name: created_at
        type: DateTime
        default: now
`

func TestDDLCommand(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgPath := writeTempFile(t, dir, "modelsql.yaml", testConfig)
	manPath := writeTempFile(t, dir, "models.yaml", testManifest)

	stdout, stderr, err := executeCommand(rootCmd, "ddl", "--config", cfgPath, "--manifest", manPath)

	require.NoError(t, err)
	assert.Empty(t, stderr, "stderr should be empty on success")
	assert.Contains(t, stdout,
		"create table if not exists User (id serial primary key autoincrement, name varchar(50) unique not null, email varchar(255), created_at varchar(40) default current_timestamp not null);")
}

func TestDDLCommand_MissingManifest(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgPath := writeTempFile(t, dir, "modelsql.yaml", testConfig)

	_, _, err := executeCommand(rootCmd, "ddl", "--config", cfgPath, "--manifest", filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening model manifest")
}

func TestDDLCommand_InvalidConfig(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgPath := writeTempFile(t, dir, "modelsql.yaml", "logging:\n  level: info\n")

	_, _, err := executeCommand(rootCmd, "ddl", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
