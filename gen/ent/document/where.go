// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/simdocs-io/report-reconciler/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCustomerID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// DocKey applies equality check predicate on the "doc_key" field. It's identical to DocKeyEQ.
func DocKey(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocKey, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// SimilarityReportPath applies equality check predicate on the "similarity_report_path" field. It's identical to SimilarityReportPathEQ.
func SimilarityReportPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSimilarityReportPath, v))
}

// AiReportPath applies equality check predicate on the "ai_report_path" field. It's identical to AiReportPathEQ.
func AiReportPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAiReportPath, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsReview, v))
}

// ReviewReason applies equality check predicate on the "review_reason" field. It's identical to ReviewReasonEQ.
func ReviewReason(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldReviewReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCustomerID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// DocKeyEQ applies the EQ predicate on the "doc_key" field.
func DocKeyEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocKey, v))
}

// DocKeyNEQ applies the NEQ predicate on the "doc_key" field.
func DocKeyNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocKey, v))
}

// DocKeyIn applies the In predicate on the "doc_key" field.
func DocKeyIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocKey, vs...))
}

// DocKeyNotIn applies the NotIn predicate on the "doc_key" field.
func DocKeyNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocKey, vs...))
}

// DocKeyGT applies the GT predicate on the "doc_key" field.
func DocKeyGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocKey, v))
}

// DocKeyGTE applies the GTE predicate on the "doc_key" field.
func DocKeyGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocKey, v))
}

// DocKeyLT applies the LT predicate on the "doc_key" field.
func DocKeyLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocKey, v))
}

// DocKeyLTE applies the LTE predicate on the "doc_key" field.
func DocKeyLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocKey, v))
}

// DocKeyContains applies the Contains predicate on the "doc_key" field.
func DocKeyContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocKey, v))
}

// DocKeyHasPrefix applies the HasPrefix predicate on the "doc_key" field.
func DocKeyHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocKey, v))
}

// DocKeyHasSuffix applies the HasSuffix predicate on the "doc_key" field.
func DocKeyHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocKey, v))
}

// DocKeyEqualFold applies the EqualFold predicate on the "doc_key" field.
func DocKeyEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocKey, v))
}

// DocKeyContainsFold applies the ContainsFold predicate on the "doc_key" field.
func DocKeyContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// SimilarityReportPathEQ applies the EQ predicate on the "similarity_report_path" field.
func SimilarityReportPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSimilarityReportPath, v))
}

// SimilarityReportPathNEQ applies the NEQ predicate on the "similarity_report_path" field.
func SimilarityReportPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSimilarityReportPath, v))
}

// SimilarityReportPathIn applies the In predicate on the "similarity_report_path" field.
func SimilarityReportPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSimilarityReportPath, vs...))
}

// SimilarityReportPathNotIn applies the NotIn predicate on the "similarity_report_path" field.
func SimilarityReportPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSimilarityReportPath, vs...))
}

// SimilarityReportPathGT applies the GT predicate on the "similarity_report_path" field.
func SimilarityReportPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSimilarityReportPath, v))
}

// SimilarityReportPathGTE applies the GTE predicate on the "similarity_report_path" field.
func SimilarityReportPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSimilarityReportPath, v))
}

// SimilarityReportPathLT applies the LT predicate on the "similarity_report_path" field.
func SimilarityReportPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSimilarityReportPath, v))
}

// SimilarityReportPathLTE applies the LTE predicate on the "similarity_report_path" field.
func SimilarityReportPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSimilarityReportPath, v))
}

// SimilarityReportPathContains applies the Contains predicate on the "similarity_report_path" field.
func SimilarityReportPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSimilarityReportPath, v))
}

// SimilarityReportPathHasPrefix applies the HasPrefix predicate on the "similarity_report_path" field.
func SimilarityReportPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSimilarityReportPath, v))
}

// SimilarityReportPathHasSuffix applies the HasSuffix predicate on the "similarity_report_path" field.
func SimilarityReportPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSimilarityReportPath, v))
}

// SimilarityReportPathIsNil applies the IsNil predicate on the "similarity_report_path" field.
func SimilarityReportPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSimilarityReportPath))
}

// SimilarityReportPathNotNil applies the NotNil predicate on the "similarity_report_path" field.
func SimilarityReportPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSimilarityReportPath))
}

// SimilarityReportPathEqualFold applies the EqualFold predicate on the "similarity_report_path" field.
func SimilarityReportPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSimilarityReportPath, v))
}

// SimilarityReportPathContainsFold applies the ContainsFold predicate on the "similarity_report_path" field.
func SimilarityReportPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSimilarityReportPath, v))
}

// AiReportPathEQ applies the EQ predicate on the "ai_report_path" field.
func AiReportPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAiReportPath, v))
}

// AiReportPathNEQ applies the NEQ predicate on the "ai_report_path" field.
func AiReportPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAiReportPath, v))
}

// AiReportPathIn applies the In predicate on the "ai_report_path" field.
func AiReportPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAiReportPath, vs...))
}

// AiReportPathNotIn applies the NotIn predicate on the "ai_report_path" field.
func AiReportPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAiReportPath, vs...))
}

// AiReportPathGT applies the GT predicate on the "ai_report_path" field.
func AiReportPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAiReportPath, v))
}

// AiReportPathGTE applies the GTE predicate on the "ai_report_path" field.
func AiReportPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAiReportPath, v))
}

// AiReportPathLT applies the LT predicate on the "ai_report_path" field.
func AiReportPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAiReportPath, v))
}

// AiReportPathLTE applies the LTE predicate on the "ai_report_path" field.
func AiReportPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAiReportPath, v))
}

// AiReportPathContains applies the Contains predicate on the "ai_report_path" field.
func AiReportPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldAiReportPath, v))
}

// AiReportPathHasPrefix applies the HasPrefix predicate on the "ai_report_path" field.
func AiReportPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldAiReportPath, v))
}

// AiReportPathHasSuffix applies the HasSuffix predicate on the "ai_report_path" field.
func AiReportPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldAiReportPath, v))
}

// AiReportPathIsNil applies the IsNil predicate on the "ai_report_path" field.
func AiReportPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldAiReportPath))
}

// AiReportPathNotNil applies the NotNil predicate on the "ai_report_path" field.
func AiReportPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldAiReportPath))
}

// AiReportPathEqualFold applies the EqualFold predicate on the "ai_report_path" field.
func AiReportPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldAiReportPath, v))
}

// AiReportPathContainsFold applies the ContainsFold predicate on the "ai_report_path" field.
func AiReportPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldAiReportPath, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNeedsReview, v))
}

// ReviewReasonEQ applies the EQ predicate on the "review_reason" field.
func ReviewReasonEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldReviewReason, v))
}

// ReviewReasonNEQ applies the NEQ predicate on the "review_reason" field.
func ReviewReasonNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldReviewReason, v))
}

// ReviewReasonIn applies the In predicate on the "review_reason" field.
func ReviewReasonIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldReviewReason, vs...))
}

// ReviewReasonNotIn applies the NotIn predicate on the "review_reason" field.
func ReviewReasonNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldReviewReason, vs...))
}

// ReviewReasonGT applies the GT predicate on the "review_reason" field.
func ReviewReasonGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldReviewReason, v))
}

// ReviewReasonGTE applies the GTE predicate on the "review_reason" field.
func ReviewReasonGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldReviewReason, v))
}

// ReviewReasonLT applies the LT predicate on the "review_reason" field.
func ReviewReasonLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldReviewReason, v))
}

// ReviewReasonLTE applies the LTE predicate on the "review_reason" field.
func ReviewReasonLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldReviewReason, v))
}

// ReviewReasonContains applies the Contains predicate on the "review_reason" field.
func ReviewReasonContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldReviewReason, v))
}

// ReviewReasonHasPrefix applies the HasPrefix predicate on the "review_reason" field.
func ReviewReasonHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldReviewReason, v))
}

// ReviewReasonHasSuffix applies the HasSuffix predicate on the "review_reason" field.
func ReviewReasonHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldReviewReason, v))
}

// ReviewReasonIsNil applies the IsNil predicate on the "review_reason" field.
func ReviewReasonIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldReviewReason))
}

// ReviewReasonNotNil applies the NotNil predicate on the "review_reason" field.
func ReviewReasonNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldReviewReason))
}

// ReviewReasonEqualFold applies the EqualFold predicate on the "review_reason" field.
func ReviewReasonEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldReviewReason, v))
}

// ReviewReasonContainsFold applies the ContainsFold predicate on the "review_reason" field.
func ReviewReasonContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldReviewReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUnmatchedReports applies the HasEdge predicate on the "unmatched_reports" edge.
func HasUnmatchedReports() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UnmatchedReportsTable, UnmatchedReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUnmatchedReportsWith applies the HasEdge predicate on the "unmatched_reports" edge with a given conditions (other predicates).
func HasUnmatchedReportsWith(preds ...predicate.UnmatchedReport) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newUnmatchedReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
