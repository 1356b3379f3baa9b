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
	"github.com/utiliscan/meterscan/gen/ent/device"
	"github.com/utiliscan/meterscan/gen/ent/predicate"
	"github.com/utiliscan/meterscan/gen/ent/reading"
	"github.com/utiliscan/meterscan/gen/ent/scanjob"
)

// ReadingUpdate is the builder for updating Reading entities.
type ReadingUpdate struct {
	config
	hooks    []Hook
	mutation *ReadingMutation
}

// Where appends a list predicates to the ReadingUpdate builder.
func (_u *ReadingUpdate) Where(ps ...predicate.Reading) *ReadingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ReadingUpdate) SetJobID(v uuid.UUID) *ReadingUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableJobID(v *uuid.UUID) *ReadingUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *ReadingUpdate) SetDeviceID(v uuid.UUID) *ReadingUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableDeviceID(v *uuid.UUID) *ReadingUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReadingUpdate) SetItemID(v string) *ReadingUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableItemID(v *string) *ReadingUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ReadingUpdate) SetLabel(v string) *ReadingUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableLabel(v *string) *ReadingUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ReadingUpdate) SetValue(v string) *ReadingUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableValue(v *string) *ReadingUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ReadingUpdate) SetConfidence(v int) *ReadingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableConfidence(v *int) *ReadingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ReadingUpdate) AddConfidence(v int) *ReadingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLineIndex sets the "line_index" field.
func (_u *ReadingUpdate) SetLineIndex(v int) *ReadingUpdate {
	_u.mutation.ResetLineIndex()
	_u.mutation.SetLineIndex(v)
	return _u
}

// SetNillableLineIndex sets the "line_index" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableLineIndex(v *int) *ReadingUpdate {
	if v != nil {
		_u.SetLineIndex(*v)
	}
	return _u
}

// AddLineIndex adds value to the "line_index" field.
func (_u *ReadingUpdate) AddLineIndex(v int) *ReadingUpdate {
	_u.mutation.AddLineIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReadingUpdate) SetCreatedAt(v time.Time) *ReadingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReadingUpdate) SetNillableCreatedAt(v *time.Time) *ReadingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ScanJob entity.
func (_u *ReadingUpdate) SetJob(v *ScanJob) *ReadingUpdate {
	return _u.SetJobID(v.ID)
}

// SetDevice sets the "device" edge to the Device entity.
func (_u *ReadingUpdate) SetDevice(v *Device) *ReadingUpdate {
	return _u.SetDeviceID(v.ID)
}

// Mutation returns the ReadingMutation object of the builder.
func (_u *ReadingUpdate) Mutation() *ReadingMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ScanJob entity.
func (_u *ReadingUpdate) ClearJob() *ReadingUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearDevice clears the "device" edge to the Device entity.
func (_u *ReadingUpdate) ClearDevice() *ReadingUpdate {
	_u.mutation.ClearDevice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadingUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reading.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Reading.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := reading.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Reading.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := reading.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Reading.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LineIndex(); ok {
		if err := reading.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "Reading.line_index": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reading.job"`)
	}
	if _u.mutation.DeviceCleared() && len(_u.mutation.DeviceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reading.device"`)
	}
	return nil
}

func (_u *ReadingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reading.Table, reading.Columns, sqlgraph.NewFieldSpec(reading.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reading.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(reading.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(reading.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(reading.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(reading.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineIndex(); ok {
		_spec.SetField(reading.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineIndex(); ok {
		_spec.AddField(reading.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reading.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.JobTable,
			Columns: []string{reading.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.JobTable,
			Columns: []string{reading.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeviceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.DeviceTable,
			Columns: []string{reading.DeviceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(device.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeviceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.DeviceTable,
			Columns: []string{reading.DeviceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(device.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reading.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadingUpdateOne is the builder for updating a single Reading entity.
type ReadingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadingMutation
}

// SetJobID sets the "job_id" field.
func (_u *ReadingUpdateOne) SetJobID(v uuid.UUID) *ReadingUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableJobID(v *uuid.UUID) *ReadingUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *ReadingUpdateOne) SetDeviceID(v uuid.UUID) *ReadingUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableDeviceID(v *uuid.UUID) *ReadingUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReadingUpdateOne) SetItemID(v string) *ReadingUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableItemID(v *string) *ReadingUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ReadingUpdateOne) SetLabel(v string) *ReadingUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableLabel(v *string) *ReadingUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ReadingUpdateOne) SetValue(v string) *ReadingUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableValue(v *string) *ReadingUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ReadingUpdateOne) SetConfidence(v int) *ReadingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableConfidence(v *int) *ReadingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ReadingUpdateOne) AddConfidence(v int) *ReadingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLineIndex sets the "line_index" field.
func (_u *ReadingUpdateOne) SetLineIndex(v int) *ReadingUpdateOne {
	_u.mutation.ResetLineIndex()
	_u.mutation.SetLineIndex(v)
	return _u
}

// SetNillableLineIndex sets the "line_index" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableLineIndex(v *int) *ReadingUpdateOne {
	if v != nil {
		_u.SetLineIndex(*v)
	}
	return _u
}

// AddLineIndex adds value to the "line_index" field.
func (_u *ReadingUpdateOne) AddLineIndex(v int) *ReadingUpdateOne {
	_u.mutation.AddLineIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReadingUpdateOne) SetCreatedAt(v time.Time) *ReadingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReadingUpdateOne) SetNillableCreatedAt(v *time.Time) *ReadingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ScanJob entity.
func (_u *ReadingUpdateOne) SetJob(v *ScanJob) *ReadingUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetDevice sets the "device" edge to the Device entity.
func (_u *ReadingUpdateOne) SetDevice(v *Device) *ReadingUpdateOne {
	return _u.SetDeviceID(v.ID)
}

// Mutation returns the ReadingMutation object of the builder.
func (_u *ReadingUpdateOne) Mutation() *ReadingMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ScanJob entity.
func (_u *ReadingUpdateOne) ClearJob() *ReadingUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearDevice clears the "device" edge to the Device entity.
func (_u *ReadingUpdateOne) ClearDevice() *ReadingUpdateOne {
	_u.mutation.ClearDevice()
	return _u
}

// Where appends a list predicates to the ReadingUpdate builder.
func (_u *ReadingUpdateOne) Where(ps ...predicate.Reading) *ReadingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadingUpdateOne) Select(field string, fields ...string) *ReadingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reading entity.
func (_u *ReadingUpdateOne) Save(ctx context.Context) (*Reading, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingUpdateOne) SaveX(ctx context.Context) *Reading {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadingUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reading.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Reading.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := reading.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Reading.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := reading.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Reading.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LineIndex(); ok {
		if err := reading.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "Reading.line_index": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reading.job"`)
	}
	if _u.mutation.DeviceCleared() && len(_u.mutation.DeviceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reading.device"`)
	}
	return nil
}

func (_u *ReadingUpdateOne) sqlSave(ctx context.Context) (_node *Reading, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reading.Table, reading.Columns, sqlgraph.NewFieldSpec(reading.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reading.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reading.FieldID)
		for _, f := range fields {
			if !reading.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reading.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reading.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(reading.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(reading.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(reading.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(reading.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineIndex(); ok {
		_spec.SetField(reading.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineIndex(); ok {
		_spec.AddField(reading.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reading.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.JobTable,
			Columns: []string{reading.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.JobTable,
			Columns: []string{reading.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeviceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.DeviceTable,
			Columns: []string{reading.DeviceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(device.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeviceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reading.DeviceTable,
			Columns: []string{reading.DeviceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(device.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reading{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reading.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
