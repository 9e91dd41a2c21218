// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finsightlabs/finsight/gen/ent/analysis"
	"github.com/finsightlabs/finsight/gen/ent/document"
	"github.com/google/uuid"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *AnalysisCreate) SetDocumentID(v uuid.UUID) *AnalysisCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *AnalysisCreate) SetOwnerID(v string) *AnalysisCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *AnalysisCreate) SetQuery(v string) *AnalysisCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisCreate) SetStatus(v string) *AnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLocalSummary sets the "local_summary" field.
func (_c *AnalysisCreate) SetLocalSummary(v json.RawMessage) *AnalysisCreate {
	_c.mutation.SetLocalSummary(v)
	return _c
}

// SetStageResults sets the "stage_results" field.
func (_c *AnalysisCreate) SetStageResults(v json.RawMessage) *AnalysisCreate {
	_c.mutation.SetStageResults(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisCreate) SetErrorMessage(v string) *AnalysisCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableErrorMessage(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_c *AnalysisCreate) SetProcessingTimeSeconds(v float64) *AnalysisCreate {
	_c.mutation.SetProcessingTimeSeconds(v)
	return _c
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableProcessingTimeSeconds(v *float64) *AnalysisCreate {
	if v != nil {
		_c.SetProcessingTimeSeconds(*v)
	}
	return _c
}

// SetTextLength sets the "text_length" field.
func (_c *AnalysisCreate) SetTextLength(v int) *AnalysisCreate {
	_c.mutation.SetTextLength(v)
	return _c
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableTextLength(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetTextLength(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v uuid.UUID) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableID(v *uuid.UUID) *AnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *AnalysisCreate) SetDocument(v *Document) *AnalysisCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.ProcessingTimeSeconds(); !ok {
		v := analysis.DefaultProcessingTimeSeconds
		_c.mutation.SetProcessingTimeSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Analysis.document_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Analysis.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := analysis.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Analysis.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "Analysis.query"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Analysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingTimeSeconds(); !ok {
		return &ValidationError{Name: "processing_time_seconds", err: errors.New(`ent: missing required field "Analysis.processing_time_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Analysis.document"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
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

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(analysis.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(analysis.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LocalSummary(); ok {
		_spec.SetField(analysis.FieldLocalSummary, field.TypeJSON, value)
		_node.LocalSummary = value
	}
	if value, ok := _c.mutation.StageResults(); ok {
		_spec.SetField(analysis.FieldStageResults, field.TypeJSON, value)
		_node.StageResults = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysis.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(analysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
		_node.ProcessingTimeSeconds = value
	}
	if value, ok := _c.mutation.TextLength(); ok {
		_spec.SetField(analysis.FieldTextLength, field.TypeInt, value)
		_node.TextLength = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.DocumentTable,
			Columns: []string{analysis.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
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
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
