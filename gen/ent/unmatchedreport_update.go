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
	"github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/gen/ent/predicate"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// UnmatchedReportUpdate is the builder for updating UnmatchedReport entities.
type UnmatchedReportUpdate struct {
	config
	hooks    []Hook
	mutation *UnmatchedReportMutation
}

// Where appends a list predicates to the UnmatchedReportUpdate builder.
func (_u *UnmatchedReportUpdate) Where(ps ...predicate.UnmatchedReport) *UnmatchedReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UnmatchedReportUpdate) SetFilename(v string) *UnmatchedReportUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableFilename(v *string) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetReportKey sets the "report_key" field.
func (_u *UnmatchedReportUpdate) SetReportKey(v string) *UnmatchedReportUpdate {
	_u.mutation.SetReportKey(v)
	return _u
}

// SetNillableReportKey sets the "report_key" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableReportKey(v *string) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetReportKey(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UnmatchedReportUpdate) SetFilePath(v string) *UnmatchedReportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableFilePath(v *string) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *UnmatchedReportUpdate) SetReason(v string) *UnmatchedReportUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableReason(v *string) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *UnmatchedReportUpdate) SetResolved(v bool) *UnmatchedReportUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableResolved(v *bool) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *UnmatchedReportUpdate) SetDocumentID(v uuid.UUID) *UnmatchedReportUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableDocumentID(v *uuid.UUID) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *UnmatchedReportUpdate) ClearDocumentID() *UnmatchedReportUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UnmatchedReportUpdate) SetCreatedAt(v time.Time) *UnmatchedReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableCreatedAt(v *time.Time) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *UnmatchedReportUpdate) SetResolvedAt(v time.Time) *UnmatchedReportUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *UnmatchedReportUpdate) SetNillableResolvedAt(v *time.Time) *UnmatchedReportUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *UnmatchedReportUpdate) ClearResolvedAt() *UnmatchedReportUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *UnmatchedReportUpdate) SetDocument(v *Document) *UnmatchedReportUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the UnmatchedReportMutation object of the builder.
func (_u *UnmatchedReportUpdate) Mutation() *UnmatchedReportMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *UnmatchedReportUpdate) ClearDocument() *UnmatchedReportUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnmatchedReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnmatchedReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnmatchedReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnmatchedReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnmatchedReportUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := unmatchedreport.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportKey(); ok {
		if err := unmatchedreport.ReportKeyValidator(v); err != nil {
			return &ValidationError{Name: "report_key", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.report_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := unmatchedreport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := unmatchedreport.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *UnmatchedReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unmatchedreport.Table, unmatchedreport.Columns, sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(unmatchedreport.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportKey(); ok {
		_spec.SetField(unmatchedreport.FieldReportKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(unmatchedreport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(unmatchedreport.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(unmatchedreport.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(unmatchedreport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(unmatchedreport.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(unmatchedreport.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unmatchedreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnmatchedReportUpdateOne is the builder for updating a single UnmatchedReport entity.
type UnmatchedReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnmatchedReportMutation
}

// SetFilename sets the "filename" field.
func (_u *UnmatchedReportUpdateOne) SetFilename(v string) *UnmatchedReportUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableFilename(v *string) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetReportKey sets the "report_key" field.
func (_u *UnmatchedReportUpdateOne) SetReportKey(v string) *UnmatchedReportUpdateOne {
	_u.mutation.SetReportKey(v)
	return _u
}

// SetNillableReportKey sets the "report_key" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableReportKey(v *string) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetReportKey(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UnmatchedReportUpdateOne) SetFilePath(v string) *UnmatchedReportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableFilePath(v *string) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *UnmatchedReportUpdateOne) SetReason(v string) *UnmatchedReportUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableReason(v *string) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *UnmatchedReportUpdateOne) SetResolved(v bool) *UnmatchedReportUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableResolved(v *bool) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *UnmatchedReportUpdateOne) SetDocumentID(v uuid.UUID) *UnmatchedReportUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableDocumentID(v *uuid.UUID) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *UnmatchedReportUpdateOne) ClearDocumentID() *UnmatchedReportUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UnmatchedReportUpdateOne) SetCreatedAt(v time.Time) *UnmatchedReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableCreatedAt(v *time.Time) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *UnmatchedReportUpdateOne) SetResolvedAt(v time.Time) *UnmatchedReportUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *UnmatchedReportUpdateOne) SetNillableResolvedAt(v *time.Time) *UnmatchedReportUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *UnmatchedReportUpdateOne) ClearResolvedAt() *UnmatchedReportUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *UnmatchedReportUpdateOne) SetDocument(v *Document) *UnmatchedReportUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the UnmatchedReportMutation object of the builder.
func (_u *UnmatchedReportUpdateOne) Mutation() *UnmatchedReportMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *UnmatchedReportUpdateOne) ClearDocument() *UnmatchedReportUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the UnmatchedReportUpdate builder.
func (_u *UnmatchedReportUpdateOne) Where(ps ...predicate.UnmatchedReport) *UnmatchedReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnmatchedReportUpdateOne) Select(field string, fields ...string) *UnmatchedReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnmatchedReport entity.
func (_u *UnmatchedReportUpdateOne) Save(ctx context.Context) (*UnmatchedReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnmatchedReportUpdateOne) SaveX(ctx context.Context) *UnmatchedReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnmatchedReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnmatchedReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnmatchedReportUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := unmatchedreport.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportKey(); ok {
		if err := unmatchedreport.ReportKeyValidator(v); err != nil {
			return &ValidationError{Name: "report_key", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.report_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := unmatchedreport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := unmatchedreport.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "UnmatchedReport.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *UnmatchedReportUpdateOne) sqlSave(ctx context.Context) (_node *UnmatchedReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unmatchedreport.Table, unmatchedreport.Columns, sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnmatchedReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unmatchedreport.FieldID)
		for _, f := range fields {
			if !unmatchedreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unmatchedreport.FieldID {
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
		_spec.SetField(unmatchedreport.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportKey(); ok {
		_spec.SetField(unmatchedreport.FieldReportKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(unmatchedreport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(unmatchedreport.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(unmatchedreport.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(unmatchedreport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(unmatchedreport.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(unmatchedreport.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UnmatchedReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unmatchedreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
