// pkg/schema/manifest_test.go
package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userManifest = `
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
      - name: active
        type: Boolean
        default: true
      - name: retries
        type: Integer
        default: 3
      - name: status
        type: String
        default: pending
      - name: created_at
        type: DateTime
        default: now
  - name: Post
    fields:
      - name: id
        type: Serial
        primary_key: true
        auto: true
      - name: user_id
        type: Integer
        foreign_key: User.id
`

func TestLoadManifest(t *testing.T) {
	manifest, err := LoadManifest(strings.NewReader(userManifest))
	require.NoError(t, err)
	require.Len(t, manifest.Models, 2)

	user := manifest.Models[0]
	assert.Equal(t, "User", user.Name)
	require.Len(t, user.Fields, 7)

	id := user.Fields[0]
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.Auto)
	assert.Equal(t, TypeSerial, id.Type)

	email, ok := user.Field("email")
	require.True(t, ok)
	assert.True(t, email.Nullable)

	// Default literal kinds survive YAML typing.
	active, _ := user.Field("active")
	require.NotNil(t, active.Default)
	assert.Equal(t, DefaultBool, active.Default.Kind)
	assert.True(t, active.Default.Bool)

	retries, _ := user.Field("retries")
	require.NotNil(t, retries.Default)
	assert.Equal(t, DefaultInt, retries.Default.Kind)
	assert.Equal(t, int64(3), retries.Default.Int)

	status, _ := user.Field("status")
	require.NotNil(t, status.Default)
	assert.Equal(t, DefaultString, status.Default.Kind)
	assert.Equal(t, "pending", status.Default.Str)

	createdAt, _ := user.Field("created_at")
	require.NotNil(t, createdAt.Default)
	assert.Equal(t, DefaultNow, createdAt.Default.Kind)

	post := manifest.Models[1]
	userID, ok := post.Field("user_id")
	require.True(t, ok)
	require.NotNil(t, userID.ForeignKey)
	assert.Equal(t, "User", userID.ForeignKey.Table)
	assert.Equal(t, "id", userID.ForeignKey.Column)
}

func TestLoadManifest_Error_UnknownType(t *testing.T) {
	_, err := LoadManifest(strings.NewReader(`
models:
  - name: Bad
    fields:
      - name: amount
        type: Decimal
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFieldType)
}

func TestLoadManifest_Error_BadForeignKey(t *testing.T) {
	_, err := LoadManifest(strings.NewReader(`
models:
  - name: Bad
    fields:
      - name: user_id
        type: Integer
        foreign_key: users
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidForeignKeySpec)
}

func TestLoadManifest_Error_UnknownKey(t *testing.T) {
	_, err := LoadManifest(strings.NewReader(`
models:
  - name: Bad
    fields:
      - name: id
        type: Serial
        autoincrement: true
`))
	require.Error(t, err, "unknown manifest keys are rejected")
}

func TestLoadManifest_Error_NonScalarDefault(t *testing.T) {
	_, err := LoadManifest(strings.NewReader(`
models:
  - name: Bad
    fields:
      - name: status
        type: String
        default:
          value: pending
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default must be a bool, integer or string scalar")
}

func TestLoadManifest_Error_UnnamedModel(t *testing.T) {
	_, err := LoadManifest(strings.NewReader(`
models:
  - fields:
      - name: id
        type: Serial
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedStructShape)
}
