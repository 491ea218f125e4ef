// Code generated by ent, DO NOT EDIT.

package unmatchedreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/simdocs-io/report-reconciler/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldFilename, v))
}

// ReportKey applies equality check predicate on the "report_key" field. It's identical to ReportKeyEQ.
func ReportKey(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldReportKey, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldFilePath, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldReason, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldResolved, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldDocumentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldResolvedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContainsFold(FieldFilename, v))
}

// ReportKeyEQ applies the EQ predicate on the "report_key" field.
func ReportKeyEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldReportKey, v))
}

// ReportKeyNEQ applies the NEQ predicate on the "report_key" field.
func ReportKeyNEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldReportKey, v))
}

// ReportKeyIn applies the In predicate on the "report_key" field.
func ReportKeyIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldReportKey, vs...))
}

// ReportKeyNotIn applies the NotIn predicate on the "report_key" field.
func ReportKeyNotIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldReportKey, vs...))
}

// ReportKeyGT applies the GT predicate on the "report_key" field.
func ReportKeyGT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldReportKey, v))
}

// ReportKeyGTE applies the GTE predicate on the "report_key" field.
func ReportKeyGTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldReportKey, v))
}

// ReportKeyLT applies the LT predicate on the "report_key" field.
func ReportKeyLT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldReportKey, v))
}

// ReportKeyLTE applies the LTE predicate on the "report_key" field.
func ReportKeyLTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldReportKey, v))
}

// ReportKeyContains applies the Contains predicate on the "report_key" field.
func ReportKeyContains(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContains(FieldReportKey, v))
}

// ReportKeyHasPrefix applies the HasPrefix predicate on the "report_key" field.
func ReportKeyHasPrefix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasPrefix(FieldReportKey, v))
}

// ReportKeyHasSuffix applies the HasSuffix predicate on the "report_key" field.
func ReportKeyHasSuffix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasSuffix(FieldReportKey, v))
}

// ReportKeyEqualFold applies the EqualFold predicate on the "report_key" field.
func ReportKeyEqualFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEqualFold(FieldReportKey, v))
}

// ReportKeyContainsFold applies the ContainsFold predicate on the "report_key" field.
func ReportKeyContainsFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContainsFold(FieldReportKey, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContainsFold(FieldFilePath, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldContainsFold(FieldReason, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldResolved, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDIsNil applies the IsNil predicate on the "document_id" field.
func DocumentIDIsNil() predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIsNull(FieldDocumentID))
}

// DocumentIDNotNil applies the NotNil predicate on the "document_id" field.
func DocumentIDNotNil() predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotNull(FieldDocumentID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.FieldNotNull(FieldResolvedAt))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.UnmatchedReport {
	return predicate.UnmatchedReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnmatchedReport) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnmatchedReport) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnmatchedReport) predicate.UnmatchedReport {
	return predicate.UnmatchedReport(sql.NotPredicates(p))
}
