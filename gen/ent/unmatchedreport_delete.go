// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simdocs-io/report-reconciler/gen/ent/predicate"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// UnmatchedReportDelete is the builder for deleting a UnmatchedReport entity.
type UnmatchedReportDelete struct {
	config
	hooks    []Hook
	mutation *UnmatchedReportMutation
}

// Where appends a list predicates to the UnmatchedReportDelete builder.
func (_d *UnmatchedReportDelete) Where(ps ...predicate.UnmatchedReport) *UnmatchedReportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UnmatchedReportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnmatchedReportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UnmatchedReportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(unmatchedreport.Table, sqlgraph.NewFieldSpec(unmatchedreport.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UnmatchedReportDeleteOne is the builder for deleting a single UnmatchedReport entity.
type UnmatchedReportDeleteOne struct {
	_d *UnmatchedReportDelete
}

// Where appends a list predicates to the UnmatchedReportDelete builder.
func (_d *UnmatchedReportDeleteOne) Where(ps ...predicate.UnmatchedReport) *UnmatchedReportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UnmatchedReportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{unmatchedreport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnmatchedReportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
