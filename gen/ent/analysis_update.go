// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/finsightlabs/finsight/gen/ent/analysis"
	"github.com/finsightlabs/finsight/gen/ent/document"
	"github.com/finsightlabs/finsight/gen/ent/predicate"
	"github.com/google/uuid"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AnalysisUpdate) SetDocumentID(v uuid.UUID) *AnalysisUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableDocumentID(v *uuid.UUID) *AnalysisUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AnalysisUpdate) SetOwnerID(v string) *AnalysisUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableOwnerID(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *AnalysisUpdate) SetQuery(v string) *AnalysisUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableQuery(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisUpdate) SetStatus(v string) *AnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableStatus(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLocalSummary sets the "local_summary" field.
func (_u *AnalysisUpdate) SetLocalSummary(v json.RawMessage) *AnalysisUpdate {
	_u.mutation.SetLocalSummary(v)
	return _u
}

// AppendLocalSummary appends value to the "local_summary" field.
func (_u *AnalysisUpdate) AppendLocalSummary(v json.RawMessage) *AnalysisUpdate {
	_u.mutation.AppendLocalSummary(v)
	return _u
}

// ClearLocalSummary clears the value of the "local_summary" field.
func (_u *AnalysisUpdate) ClearLocalSummary() *AnalysisUpdate {
	_u.mutation.ClearLocalSummary()
	return _u
}

// SetStageResults sets the "stage_results" field.
func (_u *AnalysisUpdate) SetStageResults(v json.RawMessage) *AnalysisUpdate {
	_u.mutation.SetStageResults(v)
	return _u
}

// AppendStageResults appends value to the "stage_results" field.
func (_u *AnalysisUpdate) AppendStageResults(v json.RawMessage) *AnalysisUpdate {
	_u.mutation.AppendStageResults(v)
	return _u
}

// ClearStageResults clears the value of the "stage_results" field.
func (_u *AnalysisUpdate) ClearStageResults() *AnalysisUpdate {
	_u.mutation.ClearStageResults()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisUpdate) SetErrorMessage(v string) *AnalysisUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableErrorMessage(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisUpdate) ClearErrorMessage() *AnalysisUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_u *AnalysisUpdate) SetProcessingTimeSeconds(v float64) *AnalysisUpdate {
	_u.mutation.ResetProcessingTimeSeconds()
	_u.mutation.SetProcessingTimeSeconds(v)
	return _u
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableProcessingTimeSeconds(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetProcessingTimeSeconds(*v)
	}
	return _u
}

// AddProcessingTimeSeconds adds value to the "processing_time_seconds" field.
func (_u *AnalysisUpdate) AddProcessingTimeSeconds(v float64) *AnalysisUpdate {
	_u.mutation.AddProcessingTimeSeconds(v)
	return _u
}

// SetTextLength sets the "text_length" field.
func (_u *AnalysisUpdate) SetTextLength(v int) *AnalysisUpdate {
	_u.mutation.ResetTextLength()
	_u.mutation.SetTextLength(v)
	return _u
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableTextLength(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetTextLength(*v)
	}
	return _u
}

// AddTextLength adds value to the "text_length" field.
func (_u *AnalysisUpdate) AddTextLength(v int) *AnalysisUpdate {
	_u.mutation.AddTextLength(v)
	return _u
}

// ClearTextLength clears the value of the "text_length" field.
func (_u *AnalysisUpdate) ClearTextLength() *AnalysisUpdate {
	_u.mutation.ClearTextLength()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *AnalysisUpdate) SetDocument(v *Document) *AnalysisUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *AnalysisUpdate) ClearDocument() *AnalysisUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := analysis.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Analysis.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.document"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(analysis.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(analysis.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocalSummary(); ok {
		_spec.SetField(analysis.FieldLocalSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLocalSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldLocalSummary, value)
		})
	}
	if _u.mutation.LocalSummaryCleared() {
		_spec.ClearField(analysis.FieldLocalSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.StageResults(); ok {
		_spec.SetField(analysis.FieldStageResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStageResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldStageResults, value)
		})
	}
	if _u.mutation.StageResultsCleared() {
		_spec.ClearField(analysis.FieldStageResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(analysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeSeconds(); ok {
		_spec.AddField(analysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TextLength(); ok {
		_spec.SetField(analysis.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLength(); ok {
		_spec.AddField(analysis.FieldTextLength, field.TypeInt, value)
	}
	if _u.mutation.TextLengthCleared() {
		_spec.ClearField(analysis.FieldTextLength, field.TypeInt)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *AnalysisUpdateOne) SetDocumentID(v uuid.UUID) *AnalysisUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableDocumentID(v *uuid.UUID) *AnalysisUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AnalysisUpdateOne) SetOwnerID(v string) *AnalysisUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableOwnerID(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *AnalysisUpdateOne) SetQuery(v string) *AnalysisUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableQuery(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisUpdateOne) SetStatus(v string) *AnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableStatus(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLocalSummary sets the "local_summary" field.
func (_u *AnalysisUpdateOne) SetLocalSummary(v json.RawMessage) *AnalysisUpdateOne {
	_u.mutation.SetLocalSummary(v)
	return _u
}

// AppendLocalSummary appends value to the "local_summary" field.
func (_u *AnalysisUpdateOne) AppendLocalSummary(v json.RawMessage) *AnalysisUpdateOne {
	_u.mutation.AppendLocalSummary(v)
	return _u
}

// ClearLocalSummary clears the value of the "local_summary" field.
func (_u *AnalysisUpdateOne) ClearLocalSummary() *AnalysisUpdateOne {
	_u.mutation.ClearLocalSummary()
	return _u
}

// SetStageResults sets the "stage_results" field.
func (_u *AnalysisUpdateOne) SetStageResults(v json.RawMessage) *AnalysisUpdateOne {
	_u.mutation.SetStageResults(v)
	return _u
}

// AppendStageResults appends value to the "stage_results" field.
func (_u *AnalysisUpdateOne) AppendStageResults(v json.RawMessage) *AnalysisUpdateOne {
	_u.mutation.AppendStageResults(v)
	return _u
}

// ClearStageResults clears the value of the "stage_results" field.
func (_u *AnalysisUpdateOne) ClearStageResults() *AnalysisUpdateOne {
	_u.mutation.ClearStageResults()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisUpdateOne) SetErrorMessage(v string) *AnalysisUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableErrorMessage(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisUpdateOne) ClearErrorMessage() *AnalysisUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_u *AnalysisUpdateOne) SetProcessingTimeSeconds(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetProcessingTimeSeconds()
	_u.mutation.SetProcessingTimeSeconds(v)
	return _u
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableProcessingTimeSeconds(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetProcessingTimeSeconds(*v)
	}
	return _u
}

// AddProcessingTimeSeconds adds value to the "processing_time_seconds" field.
func (_u *AnalysisUpdateOne) AddProcessingTimeSeconds(v float64) *AnalysisUpdateOne {
	_u.mutation.AddProcessingTimeSeconds(v)
	return _u
}

// SetTextLength sets the "text_length" field.
func (_u *AnalysisUpdateOne) SetTextLength(v int) *AnalysisUpdateOne {
	_u.mutation.ResetTextLength()
	_u.mutation.SetTextLength(v)
	return _u
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableTextLength(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetTextLength(*v)
	}
	return _u
}

// AddTextLength adds value to the "text_length" field.
func (_u *AnalysisUpdateOne) AddTextLength(v int) *AnalysisUpdateOne {
	_u.mutation.AddTextLength(v)
	return _u
}

// ClearTextLength clears the value of the "text_length" field.
func (_u *AnalysisUpdateOne) ClearTextLength() *AnalysisUpdateOne {
	_u.mutation.ClearTextLength()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *AnalysisUpdateOne) SetDocument(v *Document) *AnalysisUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *AnalysisUpdateOne) ClearDocument() *AnalysisUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := analysis.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Analysis.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.document"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(analysis.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(analysis.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocalSummary(); ok {
		_spec.SetField(analysis.FieldLocalSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLocalSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldLocalSummary, value)
		})
	}
	if _u.mutation.LocalSummaryCleared() {
		_spec.ClearField(analysis.FieldLocalSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.StageResults(); ok {
		_spec.SetField(analysis.FieldStageResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStageResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldStageResults, value)
		})
	}
	if _u.mutation.StageResultsCleared() {
		_spec.ClearField(analysis.FieldStageResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(analysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeSeconds(); ok {
		_spec.AddField(analysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TextLength(); ok {
		_spec.SetField(analysis.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLength(); ok {
		_spec.AddField(analysis.FieldTextLength, field.TypeInt, value)
	}
	if _u.mutation.TextLengthCleared() {
		_spec.ClearField(analysis.FieldTextLength, field.TypeInt)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
