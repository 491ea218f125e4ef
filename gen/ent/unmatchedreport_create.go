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
	"github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// UnmatchedReportCreate is the builder for creating a UnmatchedReport entity.
type UnmatchedReportCreate struct {
	config
	mutation *UnmatchedReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFilename sets the "filename" field.
func (_c *UnmatchedReportCreate) SetFilename(v string) *UnmatchedReportCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetReportKey sets the "report_key" field.
func (_c *UnmatchedReportCreate) SetReportKey(v string) *UnmatchedReportCreate {
	_c.mutation.SetReportKey(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *UnmatchedReportCreate) SetFilePath(v string) *UnmatchedReportCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *UnmatchedReportCreate) SetReason(v string) *UnmatchedReportCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *UnmatchedReportCreate) SetResolved(v bool) *UnmatchedReportCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *UnmatchedReportCreate) SetNillableResolved(v *bool) *UnmatchedReportCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *UnmatchedReportCreate) SetDocumentID(v uuid.UUID) *UnmatchedReportCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *UnmatchedReportCreate) SetNillableDocumentID(v *uuid.UUID) *UnmatchedReportCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnmatchedReportCreate) SetCreatedAt(v time.Time) *UnmatchedReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnmatchedReportCreate) SetNillableCreatedAt(v *time.Time) *UnmatchedReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *UnmatchedReportCreate) SetResolvedAt(v time.Time) *UnmatchedReportCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *UnmatchedReportCreate) SetNillableResolvedAt(v *time.Time) *UnmatchedReportCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnmatchedReportCreate) SetID(v uuid.UUID) *UnmatchedReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UnmatchedReportCreate) SetNillableID(v *uuid.UUID) *UnmatchedReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *UnmatchedReportCreate) SetDocument(v *Document) *UnmatchedReportCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the UnmatchedReportMutation object of the builder.
func (_c *UnmatchedReportCreate) Mutation() *UnmatchedReportMutation {
	return _c.mutation
}

// Save creates the UnmatchedReport in the database.
func (_c *UnmatchedReportCreate) Save(ctx context.Context) (*UnmatchedReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnmatchedReportCreate) SaveX(ctx context.Context) *UnmatchedReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnmatchedReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnmatchedReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnmatchedReportCreate) defaults() {
	if _, ok := _c.mutation.Resolved(); !ok {
		v := unmatchedreport.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unmatchedreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := unmatchedreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnmatchedReportCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "UnmatchedReport.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := unmatchedreport.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReportKey(); !ok {
		return &ValidationError{Name: "report_key", err: errors.New(`ent: missing required field "UnmatchedReport.report_key"`)}
	}
	if v, ok := _c.mutation.ReportKey(); ok {
		if err := unmatchedreport.ReportKeyValidator(v); err != nil {
			return &ValidationError{Name: "report_key", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.report_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "UnmatchedReport.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := unmatchedreport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "UnmatchedReport.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := unmatchedreport.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "UnmatchedReport.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnmatchedReport.created_at"`)}
	}
	return nil
}

func (_c *UnmatchedReportCreate) sqlSave(ctx context.Context) (*UnmatchedReport, error) {
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

func (_c *UnmatchedReportCreate) createSpec() (*UnmatchedReport, *sqlgraph.CreateSpec) {
	var (
		_node = &UnmatchedReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unmatchedreport.Table, sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(unmatchedreport.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ReportKey(); ok {
		_spec.SetField(unmatchedreport.FieldReportKey, field.TypeString, value)
		_node.ReportKey = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(unmatchedreport.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(unmatchedreport.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(unmatchedreport.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unmatchedreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(unmatchedreport.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   unmatchedreport.DocumentTable,
			Columns: []string{unmatchedreport.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnmatchedReport.Create().
//		SetFilename(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnmatchedReportUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *UnmatchedReportCreate) OnConflict(opts ...sql.ConflictOption) *UnmatchedReportUpsertOne {
	_c.conflict = opts
	return &UnmatchedReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnmatchedReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnmatchedReportCreate) OnConflictColumns(columns ...string) *UnmatchedReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnmatchedReportUpsertOne{
		create: _c,
	}
}

type (
	// UnmatchedReportUpsertOne is the builder for "upsert"-ing
	//  one UnmatchedReport node.
	UnmatchedReportUpsertOne struct {
		create *UnmatchedReportCreate
	}

	// UnmatchedReportUpsert is the "OnConflict" setter.
	UnmatchedReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilename sets the "filename" field.
func (u *UnmatchedReportUpsert) SetFilename(v string) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateFilename() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldFilename)
	return u
}

// SetReportKey sets the "report_key" field.
func (u *UnmatchedReportUpsert) SetReportKey(v string) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldReportKey, v)
	return u
}

// UpdateReportKey sets the "report_key" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateReportKey() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldReportKey)
	return u
}

// SetFilePath sets the "file_path" field.
func (u *UnmatchedReportUpsert) SetFilePath(v string) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateFilePath() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldFilePath)
	return u
}

// SetReason sets the "reason" field.
func (u *UnmatchedReportUpsert) SetReason(v string) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateReason() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldReason)
	return u
}

// SetResolved sets the "resolved" field.
func (u *UnmatchedReportUpsert) SetResolved(v bool) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateResolved() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldResolved)
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *UnmatchedReportUpsert) SetDocumentID(v uuid.UUID) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateDocumentID() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldDocumentID)
	return u
}

// ClearDocumentID clears the value of the "document_id" field.
func (u *UnmatchedReportUpsert) ClearDocumentID() *UnmatchedReportUpsert {
	u.SetNull(unmatchedreport.FieldDocumentID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *UnmatchedReportUpsert) SetCreatedAt(v time.Time) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateCreatedAt() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldCreatedAt)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *UnmatchedReportUpsert) SetResolvedAt(v time.Time) *UnmatchedReportUpsert {
	u.Set(unmatchedreport.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *UnmatchedReportUpsert) UpdateResolvedAt() *UnmatchedReportUpsert {
	u.SetExcluded(unmatchedreport.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *UnmatchedReportUpsert) ClearResolvedAt() *UnmatchedReportUpsert {
	u.SetNull(unmatchedreport.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UnmatchedReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unmatchedreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnmatchedReportUpsertOne) UpdateNewValues() *UnmatchedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(unmatchedreport.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnmatchedReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnmatchedReportUpsertOne) Ignore() *UnmatchedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnmatchedReportUpsertOne) DoNothing() *UnmatchedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnmatchedReportCreate.OnConflict
// documentation for more info.
func (u *UnmatchedReportUpsertOne) Update(set func(*UnmatchedReportUpsert)) *UnmatchedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnmatchedReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *UnmatchedReportUpsertOne) SetFilename(v string) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateFilename() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateFilename()
	})
}

// SetReportKey sets the "report_key" field.
func (u *UnmatchedReportUpsertOne) SetReportKey(v string) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetReportKey(v)
	})
}

// UpdateReportKey sets the "report_key" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateReportKey() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateReportKey()
	})
}

// SetFilePath sets the "file_path" field.
func (u *UnmatchedReportUpsertOne) SetFilePath(v string) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateFilePath() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateFilePath()
	})
}

// SetReason sets the "reason" field.
func (u *UnmatchedReportUpsertOne) SetReason(v string) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateReason() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateReason()
	})
}

// SetResolved sets the "resolved" field.
func (u *UnmatchedReportUpsertOne) SetResolved(v bool) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateResolved() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateResolved()
	})
}

// SetDocumentID sets the "document_id" field.
func (u *UnmatchedReportUpsertOne) SetDocumentID(v uuid.UUID) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateDocumentID() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateDocumentID()
	})
}

// ClearDocumentID clears the value of the "document_id" field.
func (u *UnmatchedReportUpsertOne) ClearDocumentID() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.ClearDocumentID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *UnmatchedReportUpsertOne) SetCreatedAt(v time.Time) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateCreatedAt() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *UnmatchedReportUpsertOne) SetResolvedAt(v time.Time) *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *UnmatchedReportUpsertOne) UpdateResolvedAt() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *UnmatchedReportUpsertOne) ClearResolvedAt() *UnmatchedReportUpsertOne {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *UnmatchedReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnmatchedReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnmatchedReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnmatchedReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UnmatchedReportUpsertOne.ID is not supported by MySQL driver. Use UnmatchedReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnmatchedReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnmatchedReportCreateBulk is the builder for creating many UnmatchedReport entities in bulk.
type UnmatchedReportCreateBulk struct {
	config
	err      error
	builders []*UnmatchedReportCreate
	conflict []sql.ConflictOption
}

// Save creates the UnmatchedReport entities in the database.
func (_c *UnmatchedReportCreateBulk) Save(ctx context.Context) ([]*UnmatchedReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnmatchedReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnmatchedReportMutation)
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
func (_c *UnmatchedReportCreateBulk) SaveX(ctx context.Context) []*UnmatchedReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnmatchedReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnmatchedReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnmatchedReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnmatchedReportUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *UnmatchedReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnmatchedReportUpsertBulk {
	_c.conflict = opts
	return &UnmatchedReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnmatchedReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnmatchedReportCreateBulk) OnConflictColumns(columns ...string) *UnmatchedReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnmatchedReportUpsertBulk{
		create: _c,
	}
}

// UnmatchedReportUpsertBulk is the builder for "upsert"-ing
// a bulk of UnmatchedReport nodes.
type UnmatchedReportUpsertBulk struct {
	create *UnmatchedReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UnmatchedReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unmatchedreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnmatchedReportUpsertBulk) UpdateNewValues() *UnmatchedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(unmatchedreport.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnmatchedReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnmatchedReportUpsertBulk) Ignore() *UnmatchedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnmatchedReportUpsertBulk) DoNothing() *UnmatchedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnmatchedReportCreateBulk.OnConflict
// documentation for more info.
func (u *UnmatchedReportUpsertBulk) Update(set func(*UnmatchedReportUpsert)) *UnmatchedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnmatchedReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *UnmatchedReportUpsertBulk) SetFilename(v string) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateFilename() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateFilename()
	})
}

// SetReportKey sets the "report_key" field.
func (u *UnmatchedReportUpsertBulk) SetReportKey(v string) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetReportKey(v)
	})
}

// UpdateReportKey sets the "report_key" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateReportKey() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateReportKey()
	})
}

// SetFilePath sets the "file_path" field.
func (u *UnmatchedReportUpsertBulk) SetFilePath(v string) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateFilePath() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateFilePath()
	})
}

// SetReason sets the "reason" field.
func (u *UnmatchedReportUpsertBulk) SetReason(v string) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateReason() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateReason()
	})
}

// SetResolved sets the "resolved" field.
func (u *UnmatchedReportUpsertBulk) SetResolved(v bool) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateResolved() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateResolved()
	})
}

// SetDocumentID sets the "document_id" field.
func (u *UnmatchedReportUpsertBulk) SetDocumentID(v uuid.UUID) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateDocumentID() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateDocumentID()
	})
}

// ClearDocumentID clears the value of the "document_id" field.
func (u *UnmatchedReportUpsertBulk) ClearDocumentID() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.ClearDocumentID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *UnmatchedReportUpsertBulk) SetCreatedAt(v time.Time) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateCreatedAt() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *UnmatchedReportUpsertBulk) SetResolvedAt(v time.Time) *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *UnmatchedReportUpsertBulk) UpdateResolvedAt() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *UnmatchedReportUpsertBulk) ClearResolvedAt() *UnmatchedReportUpsertBulk {
	return u.Update(func(s *UnmatchedReportUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *UnmatchedReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UnmatchedReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnmatchedReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnmatchedReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
