package scoped

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

// RelationKind tells how a relation is stored.
type RelationKind int

const (
	// ForeignKey relations keep the related row's key in a column of the owner.
	ForeignKey RelationKind = iota + 1
	// ManyToMany relations go through a join table.
	ManyToMany
)

func (k RelationKind) String() string {
	switch k {
	case ForeignKey:
		return "foreign key"
	case ManyToMany:
		return "many-to-many"
	default:
		return "unknown"
	}
}

// Relation describes a link from a model to another table.
type Relation struct {
	Name string
	Kind RelationKind

	// Column is the foreign key column on the owner table (ForeignKey).
	Column string

	// Through is the join table, SourceColumn references the owner and
	// TargetColumn the related row (ManyToMany).
	Through      string
	SourceColumn string
	TargetColumn string

	// Target is the related model. Required when the relation is followed
	// to reach the site, optional when it points at the site table itself.
	Target *Model
}

// Model describes a table queried through a Manager.
type Model struct {
	// Name is used in error messages. Defaults to Table.
	Name  string
	Table string
	// PrimaryKey defaults to "id".
	PrimaryKey string
	// Columns lists the selected columns. Empty selects the columns of the
	// scanned struct: its `db` tags, or snake_cased field names.
	Columns   []string
	Relations []Relation
}

func (m *Model) displayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Table
}

func (m *Model) pk() string {
	if m.PrimaryKey != "" {
		return m.PrimaryKey
	}
	return "id"
}

func (m *Model) relation(name string) (Relation, bool) {
	for _, rel := range m.Relations {
		if rel.Name == name {
			return rel, true
		}
	}
	return Relation{}, false
}

// quote sanitizes a possibly schema-qualified identifier.
func quote(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
