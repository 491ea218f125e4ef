// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/simdocs-io/report-reconciler/gen/ent/customer"
	"github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCustomerID sets the "customer_id" field.
func (_c *DocumentCreate) SetCustomerID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocKey sets the "doc_key" field.
func (_c *DocumentCreate) SetDocKey(v string) *DocumentCreate {
	_c.mutation.SetDocKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v string) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSimilarityReportPath sets the "similarity_report_path" field.
func (_c *DocumentCreate) SetSimilarityReportPath(v string) *DocumentCreate {
	_c.mutation.SetSimilarityReportPath(v)
	return _c
}

// SetNillableSimilarityReportPath sets the "similarity_report_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSimilarityReportPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSimilarityReportPath(*v)
	}
	return _c
}

// SetAiReportPath sets the "ai_report_path" field.
func (_c *DocumentCreate) SetAiReportPath(v string) *DocumentCreate {
	_c.mutation.SetAiReportPath(v)
	return _c
}

// SetNillableAiReportPath sets the "ai_report_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAiReportPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetAiReportPath(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *DocumentCreate) SetNeedsReview(v bool) *DocumentCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableNeedsReview(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetReviewReason sets the "review_reason" field.
func (_c *DocumentCreate) SetReviewReason(v string) *DocumentCreate {
	_c.mutation.SetReviewReason(v)
	return _c
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableReviewReason(v *string) *DocumentCreate {
	if v != nil {
		_c.SetReviewReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *DocumentCreate) SetCustomer(v *Customer) *DocumentCreate {
	return _c.SetCustomerID(v.ID)
}

// AddUnmatchedReportIDs adds the "unmatched_reports" edge to the UnmatchedReport entity by IDs.
func (_c *DocumentCreate) AddUnmatchedReportIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddUnmatchedReportIDs(ids...)
	return _c
}

// AddUnmatchedReports adds the "unmatched_reports" edges to the UnmatchedReport entity.
func (_c *DocumentCreate) AddUnmatchedReports(v ...*UnmatchedReport) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUnmatchedReportIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := document.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "Document.customer_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocKey(); !ok {
		return &ValidationError{Name: "doc_key", err: errors.New(`ent: missing required field "Document.doc_key"`)}
	}
	if v, ok := _c.mutation.DocKey(); ok {
		if err := document.DocKeyValidator(v); err != nil {
			return &ValidationError{Name: "doc_key", err: fmt.Errorf(`ent: validator failed for field "Document.doc_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Document.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	if len(_c.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`ent: missing required edge "Document.customer"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocKey(); ok {
		_spec.SetField(document.FieldDocKey, field.TypeString, value)
		_node.DocKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SimilarityReportPath(); ok {
		_spec.SetField(document.FieldSimilarityReportPath, field.TypeString, value)
		_node.SimilarityReportPath = &value
	}
	if value, ok := _c.mutation.AiReportPath(); ok {
		_spec.SetField(document.FieldAiReportPath, field.TypeString, value)
		_node.AiReportPath = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ReviewReason(); ok {
		_spec.SetField(document.FieldReviewReason, field.TypeString, value)
		_node.ReviewReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UnmatchedReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetCustomerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetCustomerID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetCustomerID sets the "customer_id" field.
func (u *DocumentUpsert) SetCustomerID(v uuid.UUID) *DocumentUpsert {
	u.Set(document.FieldCustomerID, v)
	return u
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCustomerID() *DocumentUpsert {
	u.SetExcluded(document.FieldCustomerID)
	return u
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsert) SetFilename(v string) *DocumentUpsert {
	u.Set(document.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFilename() *DocumentUpsert {
	u.SetExcluded(document.FieldFilename)
	return u
}

// SetDocKey sets the "doc_key" field.
func (u *DocumentUpsert) SetDocKey(v string) *DocumentUpsert {
	u.Set(document.FieldDocKey, v)
	return u
}

// UpdateDocKey sets the "doc_key" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDocKey() *DocumentUpsert {
	u.SetExcluded(document.FieldDocKey)
	return u
}

// SetStatus sets the "status" field.
func (u *DocumentUpsert) SetStatus(v string) *DocumentUpsert {
	u.Set(document.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStatus() *DocumentUpsert {
	u.SetExcluded(document.FieldStatus)
	return u
}

// SetSimilarityReportPath sets the "similarity_report_path" field.
func (u *DocumentUpsert) SetSimilarityReportPath(v string) *DocumentUpsert {
	u.Set(document.FieldSimilarityReportPath, v)
	return u
}

// UpdateSimilarityReportPath sets the "similarity_report_path" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSimilarityReportPath() *DocumentUpsert {
	u.SetExcluded(document.FieldSimilarityReportPath)
	return u
}

// ClearSimilarityReportPath clears the value of the "similarity_report_path" field.
func (u *DocumentUpsert) ClearSimilarityReportPath() *DocumentUpsert {
	u.SetNull(document.FieldSimilarityReportPath)
	return u
}

// SetAiReportPath sets the "ai_report_path" field.
func (u *DocumentUpsert) SetAiReportPath(v string) *DocumentUpsert {
	u.Set(document.FieldAiReportPath, v)
	return u
}

// UpdateAiReportPath sets the "ai_report_path" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateAiReportPath() *DocumentUpsert {
	u.SetExcluded(document.FieldAiReportPath)
	return u
}

// ClearAiReportPath clears the value of the "ai_report_path" field.
func (u *DocumentUpsert) ClearAiReportPath() *DocumentUpsert {
	u.SetNull(document.FieldAiReportPath)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *DocumentUpsert) SetNeedsReview(v bool) *DocumentUpsert {
	u.Set(document.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateNeedsReview() *DocumentUpsert {
	u.SetExcluded(document.FieldNeedsReview)
	return u
}

// SetReviewReason sets the "review_reason" field.
func (u *DocumentUpsert) SetReviewReason(v string) *DocumentUpsert {
	u.Set(document.FieldReviewReason, v)
	return u
}

// UpdateReviewReason sets the "review_reason" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateReviewReason() *DocumentUpsert {
	u.SetExcluded(document.FieldReviewReason)
	return u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (u *DocumentUpsert) ClearReviewReason() *DocumentUpsert {
	u.SetNull(document.FieldReviewReason)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsert) SetCreatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCreatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *DocumentUpsertOne) SetCustomerID(v uuid.UUID) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCustomerID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCustomerID()
	})
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsertOne) SetFilename(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFilename() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetDocKey sets the "doc_key" field.
func (u *DocumentUpsertOne) SetDocKey(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocKey(v)
	})
}

// UpdateDocKey sets the "doc_key" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDocKey() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocKey()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertOne) SetStatus(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStatus() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetSimilarityReportPath sets the "similarity_report_path" field.
func (u *DocumentUpsertOne) SetSimilarityReportPath(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSimilarityReportPath(v)
	})
}

// UpdateSimilarityReportPath sets the "similarity_report_path" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSimilarityReportPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSimilarityReportPath()
	})
}

// ClearSimilarityReportPath clears the value of the "similarity_report_path" field.
func (u *DocumentUpsertOne) ClearSimilarityReportPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSimilarityReportPath()
	})
}

// SetAiReportPath sets the "ai_report_path" field.
func (u *DocumentUpsertOne) SetAiReportPath(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAiReportPath(v)
	})
}

// UpdateAiReportPath sets the "ai_report_path" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateAiReportPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAiReportPath()
	})
}

// ClearAiReportPath clears the value of the "ai_report_path" field.
func (u *DocumentUpsertOne) ClearAiReportPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearAiReportPath()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *DocumentUpsertOne) SetNeedsReview(v bool) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateNeedsReview() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetReviewReason sets the "review_reason" field.
func (u *DocumentUpsertOne) SetReviewReason(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetReviewReason(v)
	})
}

// UpdateReviewReason sets the "review_reason" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateReviewReason() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateReviewReason()
	})
}

// ClearReviewReason clears the value of the "review_reason" field.
func (u *DocumentUpsertOne) ClearReviewReason() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearReviewReason()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertOne) SetCreatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCreatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetCustomerID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *DocumentUpsertBulk) SetCustomerID(v uuid.UUID) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCustomerID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCustomerID()
	})
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsertBulk) SetFilename(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFilename() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetDocKey sets the "doc_key" field.
func (u *DocumentUpsertBulk) SetDocKey(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocKey(v)
	})
}

// UpdateDocKey sets the "doc_key" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDocKey() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocKey()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertBulk) SetStatus(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStatus() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetSimilarityReportPath sets the "similarity_report_path" field.
func (u *DocumentUpsertBulk) SetSimilarityReportPath(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSimilarityReportPath(v)
	})
}

// UpdateSimilarityReportPath sets the "similarity_report_path" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSimilarityReportPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSimilarityReportPath()
	})
}

// ClearSimilarityReportPath clears the value of the "similarity_report_path" field.
func (u *DocumentUpsertBulk) ClearSimilarityReportPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSimilarityReportPath()
	})
}

// SetAiReportPath sets the "ai_report_path" field.
func (u *DocumentUpsertBulk) SetAiReportPath(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAiReportPath(v)
	})
}

// UpdateAiReportPath sets the "ai_report_path" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateAiReportPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAiReportPath()
	})
}

// ClearAiReportPath clears the value of the "ai_report_path" field.
func (u *DocumentUpsertBulk) ClearAiReportPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearAiReportPath()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *DocumentUpsertBulk) SetNeedsReview(v bool) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateNeedsReview() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetReviewReason sets the "review_reason" field.
func (u *DocumentUpsertBulk) SetReviewReason(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetReviewReason(v)
	})
}

// UpdateReviewReason sets the "review_reason" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateReviewReason() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateReviewReason()
	})
}

// ClearReviewReason clears the value of the "review_reason" field.
func (u *DocumentUpsertBulk) ClearReviewReason() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearReviewReason()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertBulk) SetCreatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCreatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
