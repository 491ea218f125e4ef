// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/simdocs-io/report-reconciler/gen/ent/customer"
	"github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/gen/ent/predicate"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *DocumentUpdate) SetCustomerID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCustomerID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocKey sets the "doc_key" field.
func (_u *DocumentUpdate) SetDocKey(v string) *DocumentUpdate {
	_u.mutation.SetDocKey(v)
	return _u
}

// SetNillableDocKey sets the "doc_key" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocKey(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSimilarityReportPath sets the "similarity_report_path" field.
func (_u *DocumentUpdate) SetSimilarityReportPath(v string) *DocumentUpdate {
	_u.mutation.SetSimilarityReportPath(v)
	return _u
}

// SetNillableSimilarityReportPath sets the "similarity_report_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSimilarityReportPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSimilarityReportPath(*v)
	}
	return _u
}

// ClearSimilarityReportPath clears the value of the "similarity_report_path" field.
func (_u *DocumentUpdate) ClearSimilarityReportPath() *DocumentUpdate {
	_u.mutation.ClearSimilarityReportPath()
	return _u
}

// SetAiReportPath sets the "ai_report_path" field.
func (_u *DocumentUpdate) SetAiReportPath(v string) *DocumentUpdate {
	_u.mutation.SetAiReportPath(v)
	return _u
}

// SetNillableAiReportPath sets the "ai_report_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAiReportPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetAiReportPath(*v)
	}
	return _u
}

// ClearAiReportPath clears the value of the "ai_report_path" field.
func (_u *DocumentUpdate) ClearAiReportPath() *DocumentUpdate {
	_u.mutation.ClearAiReportPath()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DocumentUpdate) SetNeedsReview(v bool) *DocumentUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNeedsReview(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *DocumentUpdate) SetReviewReason(v string) *DocumentUpdate {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableReviewReason(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *DocumentUpdate) ClearReviewReason() *DocumentUpdate {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *DocumentUpdate) SetCustomer(v *Customer) *DocumentUpdate {
	return _u.SetCustomerID(v.ID)
}

// AddUnmatchedReportIDs adds the "unmatched_reports" edge to the UnmatchedReport entity by IDs.
func (_u *DocumentUpdate) AddUnmatchedReportIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddUnmatchedReportIDs(ids...)
	return _u
}

// AddUnmatchedReports adds the "unmatched_reports" edges to the UnmatchedReport entity.
func (_u *DocumentUpdate) AddUnmatchedReports(v ...*UnmatchedReport) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUnmatchedReportIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *DocumentUpdate) ClearCustomer() *DocumentUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearUnmatchedReports clears all "unmatched_reports" edges to the UnmatchedReport entity.
func (_u *DocumentUpdate) ClearUnmatchedReports() *DocumentUpdate {
	_u.mutation.ClearUnmatchedReports()
	return _u
}

// RemoveUnmatchedReportIDs removes the "unmatched_reports" edge to UnmatchedReport entities by IDs.
func (_u *DocumentUpdate) RemoveUnmatchedReportIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveUnmatchedReportIDs(ids...)
	return _u
}

// RemoveUnmatchedReports removes "unmatched_reports" edges to UnmatchedReport entities.
func (_u *DocumentUpdate) RemoveUnmatchedReports(v ...*UnmatchedReport) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUnmatchedReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocKey(); ok {
		if err := document.DocKeyValidator(v); err != nil {
			return &ValidationError{Name: "doc_key", err: fmt.Errorf(`ent: validator failed for field "Document.doc_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.customer"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocKey(); ok {
		_spec.SetField(document.FieldDocKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SimilarityReportPath(); ok {
		_spec.SetField(document.FieldSimilarityReportPath, field.TypeString, value)
	}
	if _u.mutation.SimilarityReportPathCleared() {
		_spec.ClearField(document.FieldSimilarityReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.AiReportPath(); ok {
		_spec.SetField(document.FieldAiReportPath, field.TypeString, value)
	}
	if _u.mutation.AiReportPathCleared() {
		_spec.ClearField(document.FieldAiReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(document.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(document.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CustomerTable,
			Columns: []string{document.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CustomerTable,
			Columns: []string{document.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UnmatchedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.UnmatchedReportsTable,
			Columns: []string{document.UnmatchedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUnmatchedReportsIDs(); len(nodes) > 0 && !_u.mutation.UnmatchedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.UnmatchedReportsTable,
			Columns: []string{document.UnmatchedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnmatchedReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.UnmatchedReportsTable,
			Columns: []string{document.UnmatchedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *DocumentUpdateOne) SetCustomerID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCustomerID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocKey sets the "doc_key" field.
func (_u *DocumentUpdateOne) SetDocKey(v string) *DocumentUpdateOne {
	_u.mutation.SetDocKey(v)
	return _u
}

// SetNillableDocKey sets the "doc_key" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocKey(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSimilarityReportPath sets the "similarity_report_path" field.
func (_u *DocumentUpdateOne) SetSimilarityReportPath(v string) *DocumentUpdateOne {
	_u.mutation.SetSimilarityReportPath(v)
	return _u
}

// SetNillableSimilarityReportPath sets the "similarity_report_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSimilarityReportPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSimilarityReportPath(*v)
	}
	return _u
}

// ClearSimilarityReportPath clears the value of the "similarity_report_path" field.
func (_u *DocumentUpdateOne) ClearSimilarityReportPath() *DocumentUpdateOne {
	_u.mutation.ClearSimilarityReportPath()
	return _u
}

// SetAiReportPath sets the "ai_report_path" field.
func (_u *DocumentUpdateOne) SetAiReportPath(v string) *DocumentUpdateOne {
	_u.mutation.SetAiReportPath(v)
	return _u
}

// SetNillableAiReportPath sets the "ai_report_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAiReportPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetAiReportPath(*v)
	}
	return _u
}

// ClearAiReportPath clears the value of the "ai_report_path" field.
func (_u *DocumentUpdateOne) ClearAiReportPath() *DocumentUpdateOne {
	_u.mutation.ClearAiReportPath()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DocumentUpdateOne) SetNeedsReview(v bool) *DocumentUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNeedsReview(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *DocumentUpdateOne) SetReviewReason(v string) *DocumentUpdateOne {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableReviewReason(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *DocumentUpdateOne) ClearReviewReason() *DocumentUpdateOne {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *DocumentUpdateOne) SetCustomer(v *Customer) *DocumentUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// AddUnmatchedReportIDs adds the "unmatched_reports" edge to the UnmatchedReport entity by IDs.
func (_u *DocumentUpdateOne) AddUnmatchedReportIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddUnmatchedReportIDs(ids...)
	return _u
}

// AddUnmatchedReports adds the "unmatched_reports" edges to the UnmatchedReport entity.
func (_u *DocumentUpdateOne) AddUnmatchedReports(v ...*UnmatchedReport) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUnmatchedReportIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *DocumentUpdateOne) ClearCustomer() *DocumentUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearUnmatchedReports clears all "unmatched_reports" edges to the UnmatchedReport entity.
func (_u *DocumentUpdateOne) ClearUnmatchedReports() *DocumentUpdateOne {
	_u.mutation.ClearUnmatchedReports()
	return _u
}

// RemoveUnmatchedReportIDs removes the "unmatched_reports" edge to UnmatchedReport entities by IDs.
func (_u *DocumentUpdateOne) RemoveUnmatchedReportIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveUnmatchedReportIDs(ids...)
	return _u
}

// RemoveUnmatchedReports removes "unmatched_reports" edges to UnmatchedReport entities.
func (_u *DocumentUpdateOne) RemoveUnmatchedReports(v ...*UnmatchedReport) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUnmatchedReportIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocKey(); ok {
		if err := document.DocKeyValidator(v); err != nil {
			return &ValidationError{Name: "doc_key", err: fmt.Errorf(`ent: validator failed for field "Document.doc_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.customer"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocKey(); ok {
		_spec.SetField(document.FieldDocKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SimilarityReportPath(); ok {
		_spec.SetField(document.FieldSimilarityReportPath, field.TypeString, value)
	}
	if _u.mutation.SimilarityReportPathCleared() {
		_spec.ClearField(document.FieldSimilarityReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.AiReportPath(); ok {
		_spec.SetField(document.FieldAiReportPath, field.TypeString, value)
	}
	if _u.mutation.AiReportPathCleared() {
		_spec.ClearField(document.FieldAiReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(document.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(document.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CustomerTable,
			Columns: []string{document.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CustomerTable,
			Columns: []string{document.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UnmatchedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.UnmatchedReportsTable,
			Columns: []string{document.UnmatchedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUnmatchedReportsIDs(); len(nodes) > 0 && !_u.mutation.UnmatchedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.UnmatchedReportsTable,
			Columns: []string{document.UnmatchedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnmatchedReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.UnmatchedReportsTable,
			Columns: []string{document.UnmatchedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
