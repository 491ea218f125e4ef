// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDocKey holds the string denoting the doc_key field in the database.
	FieldDocKey = "doc_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSimilarityReportPath holds the string denoting the similarity_report_path field in the database.
	FieldSimilarityReportPath = "similarity_report_path"
	// FieldAiReportPath holds the string denoting the ai_report_path field in the database.
	FieldAiReportPath = "ai_report_path"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldReviewReason holds the string denoting the review_reason field in the database.
	FieldReviewReason = "review_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCustomer holds the string denoting the customer edge name in mutations.
	EdgeCustomer = "customer"
	// EdgeUnmatchedReports holds the string denoting the unmatched_reports edge name in mutations.
	EdgeUnmatchedReports = "unmatched_reports"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// CustomerTable is the table that holds the customer relation/edge.
	CustomerTable = "documents"
	// CustomerInverseTable is the table name for the Customer entity.
	// It exists in this package in order to avoid circular dependency with the "customer" package.
	CustomerInverseTable = "customers"
	// CustomerColumn is the table column denoting the customer relation/edge.
	CustomerColumn = "customer_id"
	// UnmatchedReportsTable is the table that holds the unmatched_reports relation/edge.
	UnmatchedReportsTable = "unmatched_reports"
	// UnmatchedReportsInverseTable is the table name for the UnmatchedReport entity.
	// It exists in this package in order to avoid circular dependency with the "unmatchedreport" package.
	UnmatchedReportsInverseTable = "unmatched_reports"
	// UnmatchedReportsColumn is the table column denoting the unmatched_reports relation/edge.
	UnmatchedReportsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldCustomerID,
	FieldFilename,
	FieldDocKey,
	FieldStatus,
	FieldSimilarityReportPath,
	FieldAiReportPath,
	FieldNeedsReview,
	FieldReviewReason,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DocKeyValidator is a validator for the "doc_key" field. It is called by the builders before save.
	DocKeyValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDocKey orders the results by the doc_key field.
func ByDocKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySimilarityReportPath orders the results by the similarity_report_path field.
func BySimilarityReportPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityReportPath, opts...).ToFunc()
}

// ByAiReportPath orders the results by the ai_report_path field.
func ByAiReportPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiReportPath, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByReviewReason orders the results by the review_reason field.
func ByReviewReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCustomerField orders the results by customer field.
func ByCustomerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomerStep(), sql.OrderByField(field, opts...))
	}
}

// ByUnmatchedReportsCount orders the results by unmatched_reports count.
func ByUnmatchedReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUnmatchedReportsStep(), opts...)
	}
}

// ByUnmatchedReports orders the results by unmatched_reports terms.
func ByUnmatchedReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUnmatchedReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCustomerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
	)
}
func newUnmatchedReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UnmatchedReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UnmatchedReportsTable, UnmatchedReportsColumn),
	)
}
