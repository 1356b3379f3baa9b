// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/utiliscan/meterscan/gen/ent/device"
	"github.com/utiliscan/meterscan/gen/ent/reading"
	"github.com/utiliscan/meterscan/gen/ent/scanjob"
)

// ReadingCreate is the builder for creating a Reading entity.
type ReadingCreate struct {
	config
	mutation *ReadingMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ReadingCreate) SetJobID(v uuid.UUID) *ReadingCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *ReadingCreate) SetDeviceID(v uuid.UUID) *ReadingCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReadingCreate) SetItemID(v string) *ReadingCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ReadingCreate) SetLabel(v string) *ReadingCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ReadingCreate) SetValue(v string) *ReadingCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ReadingCreate) SetConfidence(v int) *ReadingCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetLineIndex sets the "line_index" field.
func (_c *ReadingCreate) SetLineIndex(v int) *ReadingCreate {
	_c.mutation.SetLineIndex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReadingCreate) SetCreatedAt(v time.Time) *ReadingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReadingCreate) SetNillableCreatedAt(v *time.Time) *ReadingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReadingCreate) SetID(v uuid.UUID) *ReadingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReadingCreate) SetNillableID(v *uuid.UUID) *ReadingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ScanJob entity.
func (_c *ReadingCreate) SetJob(v *ScanJob) *ReadingCreate {
	return _c.SetJobID(v.ID)
}

// SetDevice sets the "device" edge to the Device entity.
func (_c *ReadingCreate) SetDevice(v *Device) *ReadingCreate {
	return _c.SetDeviceID(v.ID)
}

// Mutation returns the ReadingMutation object of the builder.
func (_c *ReadingCreate) Mutation() *ReadingMutation {
	return _c.mutation
}

// Save creates the Reading in the database.
func (_c *ReadingCreate) Save(ctx context.Context) (*Reading, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadingCreate) SaveX(ctx context.Context) *Reading {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reading.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reading.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadingCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Reading.job_id"`)}
	}
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "Reading.device_id"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Reading.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reading.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Reading.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "Reading.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := reading.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Reading.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Reading.value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Reading.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := reading.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Reading.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LineIndex(); !ok {
		return &ValidationError{Name: "line_index", err: errors.New(`ent: missing required field "Reading.line_index"`)}
	}
	if v, ok := _c.mutation.LineIndex(); ok {
		if err := reading.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "Reading.line_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reading.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Reading.job"`)}
	}
	if len(_c.mutation.DeviceIDs()) == 0 {
		return &ValidationError{Name: "device", err: errors.New(`ent: missing required edge "Reading.device"`)}
	}
	return nil
}

func (_c *ReadingCreate) sqlSave(ctx context.Context) (*Reading, error) {
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

func (_c *ReadingCreate) createSpec() (*Reading, *sqlgraph.CreateSpec) {
	var (
		_node = &Reading{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reading.Table, sqlgraph.NewFieldSpec(reading.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reading.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(reading.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(reading.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(reading.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LineIndex(); ok {
		_spec.SetField(reading.FieldLineIndex, field.TypeInt, value)
		_node.LineIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reading.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeviceIDs(); len(nodes) > 0 {
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
		_node.DeviceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReadingCreateBulk is the builder for creating many Reading entities in bulk.
type ReadingCreateBulk struct {
	config
	err      error
	builders []*ReadingCreate
}

// Save creates the Reading entities in the database.
func (_c *ReadingCreateBulk) Save(ctx context.Context) ([]*Reading, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reading, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadingMutation)
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
func (_c *ReadingCreateBulk) SaveX(ctx context.Context) []*Reading {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
