// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)
