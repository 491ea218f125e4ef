// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// UnmatchedReport is the model entity for the UnmatchedReport schema.
type UnmatchedReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ReportKey holds the value of the "report_key" field.
	ReportKey string `json:"report_key,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Resolved holds the value of the "resolved" field.
	Resolved bool `json:"resolved,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UnmatchedReportQuery when eager-loading is set.
	Edges        UnmatchedReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UnmatchedReportEdges holds the relations/edges for other nodes in the graph.
type UnmatchedReportEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UnmatchedReportEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnmatchedReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unmatchedreport.FieldDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case unmatchedreport.FieldResolved:
			values[i] = new(sql.NullBool)
		case unmatchedreport.FieldFilename, unmatchedreport.FieldReportKey, unmatchedreport.FieldFilePath, unmatchedreport.FieldReason:
			values[i] = new(sql.NullString)
		case unmatchedreport.FieldCreatedAt, unmatchedreport.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case unmatchedreport.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnmatchedReport fields.
func (_m *UnmatchedReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unmatchedreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case unmatchedreport.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case unmatchedreport.FieldReportKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_key", values[i])
			} else if value.Valid {
				_m.ReportKey = value.String
			}
		case unmatchedreport.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case unmatchedreport.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case unmatchedreport.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		case unmatchedreport.FieldDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = new(uuid.UUID)
				*_m.DocumentID = *value.S.(*uuid.UUID)
			}
		case unmatchedreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case unmatchedreport.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnmatchedReport.
// This includes values selected through modifiers, order, etc.
func (_m *UnmatchedReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the UnmatchedReport entity.
func (_m *UnmatchedReport) QueryDocument() *DocumentQuery {
	return NewUnmatchedReportClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this UnmatchedReport.
// Note that you need to call UnmatchedReport.Unwrap() before calling this method if this UnmatchedReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnmatchedReport) Update() *UnmatchedReportUpdateOne {
	return NewUnmatchedReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnmatchedReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnmatchedReport) Unwrap() *UnmatchedReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnmatchedReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnmatchedReport) String() string {
	var builder strings.Builder
	builder.WriteString("UnmatchedReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("report_key=")
	builder.WriteString(_m.ReportKey)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteString(", ")
	if v := _m.DocumentID; v != nil {
		builder.WriteString("document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UnmatchedReports is a parsable slice of UnmatchedReport.
type UnmatchedReports []*UnmatchedReport
