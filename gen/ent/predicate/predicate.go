// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// UnmatchedReport is the predicate function for unmatchedreport builders.
type UnmatchedReport func(*sql.Selector)
