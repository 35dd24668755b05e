// pkg/compiler/compiler.go
package compiler

import (
	"fmt"
	"strings"

	"github.com/russenger/modelsql/pkg/schema"
)

// Artifacts is the full output of one generation run for one model. Values
// are immutable once emitted; running Compile twice on the same definition
// yields byte-identical artifacts.
type Artifacts struct {
	// Model is the table name used in every emitted statement.
	Model string

	// DDL is the "create table if not exists" statement.
	DDL string

	// PrimaryKey is the name of the primary-key field, empty when no field is
	// marked primary key. Update and delete are unsupported on an empty key.
	PrimaryKey string

	// CreateArgs and UpdateArgs are the ordered field-name lists to pair with
	// instance values when building parameterized insert/update statements.
	CreateArgs []string
	UpdateArgs []string

	// DeleteSQL is the delete statement, binding exactly one parameter (the
	// primary-key value) through the canonical placeholder.
	DeleteSQL string
}

// Compile transforms a model definition into its artifact set. Fields are
// processed strictly one at a time, in declaration order: resolve the
// primary-key role, plan create/update arguments, apply default suppression,
// render the column clause. The default-suppression rule removes the entry
// just planned, so the phases must not be batched across fields.
//
// Any configuration error aborts the whole run; no partial artifacts are
// returned.
func Compile(def *schema.Definition) (*Artifacts, error) {
	if def == nil {
		return nil, fmt.Errorf("compile: nil definition")
	}

	art := &Artifacts{Model: def.Name}
	clauses := make([]string, 0, len(def.Fields))

	for _, field := range def.Fields {
		if field.PrimaryKey && art.PrimaryKey == "" {
			art.PrimaryKey = field.Name
		}

		planField(field, &art.CreateArgs, &art.UpdateArgs)

		clause, err := columnClause(field)
		if err != nil {
			return nil, fmt.Errorf("compile %s.%s: %w", def.Name, field.Name, err)
		}
		clauses = append(clauses, clause)
	}

	art.DDL = fmt.Sprintf("create table if not exists %s (%s);", def.Name, strings.Join(clauses, ", "))
	art.DeleteSQL = deleteStatement(def.Name, art.PrimaryKey)
	return art, nil
}
