// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/formlift/docextract/gen/ent/batch"
	"github.com/formlift/docextract/gen/ent/document"
	"github.com/formlift/docextract/gen/ent/documenttype"
	"github.com/formlift/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentTypeUpdate is the builder for updating DocumentType entities.
type DocumentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentTypeMutation
}

// Where appends a list predicates to the DocumentTypeUpdate builder.
func (_u *DocumentTypeUpdate) Where(ps ...predicate.DocumentType) *DocumentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentTypeUpdate) SetName(v string) *DocumentTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentTypeUpdate) SetNillableName(v *string) *DocumentTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSchema sets the "schema" field.
func (_u *DocumentTypeUpdate) SetSchema(v json.RawMessage) *DocumentTypeUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *DocumentTypeUpdate) AppendSchema(v json.RawMessage) *DocumentTypeUpdate {
	_u.mutation.AppendSchema(v)
	return _u
}

// SetValidationInstructions sets the "validation_instructions" field.
func (_u *DocumentTypeUpdate) SetValidationInstructions(v string) *DocumentTypeUpdate {
	_u.mutation.SetValidationInstructions(v)
	return _u
}

// SetNillableValidationInstructions sets the "validation_instructions" field if the given value is not nil.
func (_u *DocumentTypeUpdate) SetNillableValidationInstructions(v *string) *DocumentTypeUpdate {
	if v != nil {
		_u.SetValidationInstructions(*v)
	}
	return _u
}

// ClearValidationInstructions clears the value of the "validation_instructions" field.
func (_u *DocumentTypeUpdate) ClearValidationInstructions() *DocumentTypeUpdate {
	_u.mutation.ClearValidationInstructions()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *DocumentTypeUpdate) SetModelName(v string) *DocumentTypeUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *DocumentTypeUpdate) SetNillableModelName(v *string) *DocumentTypeUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetProviderName sets the "provider_name" field.
func (_u *DocumentTypeUpdate) SetProviderName(v string) *DocumentTypeUpdate {
	_u.mutation.SetProviderName(v)
	return _u
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_u *DocumentTypeUpdate) SetNillableProviderName(v *string) *DocumentTypeUpdate {
	if v != nil {
		_u.SetProviderName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *DocumentTypeUpdate) SetSystemPrompt(v string) *DocumentTypeUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *DocumentTypeUpdate) SetNillableSystemPrompt(v *string) *DocumentTypeUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *DocumentTypeUpdate) ClearSystemPrompt() *DocumentTypeUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *DocumentTypeUpdate) SetWebhookURL(v string) *DocumentTypeUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *DocumentTypeUpdate) SetNillableWebhookURL(v *string) *DocumentTypeUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *DocumentTypeUpdate) ClearWebhookURL() *DocumentTypeUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentTypeUpdate) SetUpdatedAt(v time.Time) *DocumentTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *DocumentTypeUpdate) AddDocumentIDs(ids ...uuid.UUID) *DocumentTypeUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *DocumentTypeUpdate) AddDocuments(v ...*Document) *DocumentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *DocumentTypeUpdate) AddBatchIDs(ids ...uuid.UUID) *DocumentTypeUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *DocumentTypeUpdate) AddBatches(v ...*Batch) *DocumentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the DocumentTypeMutation object of the builder.
func (_u *DocumentTypeUpdate) Mutation() *DocumentTypeMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *DocumentTypeUpdate) ClearDocuments() *DocumentTypeUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *DocumentTypeUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *DocumentTypeUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *DocumentTypeUpdate) RemoveDocuments(v ...*Document) *DocumentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *DocumentTypeUpdate) ClearBatches() *DocumentTypeUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *DocumentTypeUpdate) RemoveBatchIDs(ids ...uuid.UUID) *DocumentTypeUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *DocumentTypeUpdate) RemoveBatches(v ...*Batch) *DocumentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := documenttype.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "DocumentType.model_name": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenttype.Table, documenttype.Columns, sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(documenttype.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttype.FieldSchema, value)
		})
	}
	if value, ok := _u.mutation.ValidationInstructions(); ok {
		_spec.SetField(documenttype.FieldValidationInstructions, field.TypeString, value)
	}
	if _u.mutation.ValidationInstructionsCleared() {
		_spec.ClearField(documenttype.FieldValidationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(documenttype.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderName(); ok {
		_spec.SetField(documenttype.FieldProviderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(documenttype.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(documenttype.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(documenttype.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(documenttype.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.DocumentsTable,
			Columns: []string{documenttype.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.DocumentsTable,
			Columns: []string{documenttype.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.DocumentsTable,
			Columns: []string{documenttype.DocumentsColumn},
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
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.BatchesTable,
			Columns: []string{documenttype.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.BatchesTable,
			Columns: []string{documenttype.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.BatchesTable,
			Columns: []string{documenttype.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentTypeUpdateOne is the builder for updating a single DocumentType entity.
type DocumentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentTypeMutation
}

// SetName sets the "name" field.
func (_u *DocumentTypeUpdateOne) SetName(v string) *DocumentTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentTypeUpdateOne) SetNillableName(v *string) *DocumentTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSchema sets the "schema" field.
func (_u *DocumentTypeUpdateOne) SetSchema(v json.RawMessage) *DocumentTypeUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *DocumentTypeUpdateOne) AppendSchema(v json.RawMessage) *DocumentTypeUpdateOne {
	_u.mutation.AppendSchema(v)
	return _u
}

// SetValidationInstructions sets the "validation_instructions" field.
func (_u *DocumentTypeUpdateOne) SetValidationInstructions(v string) *DocumentTypeUpdateOne {
	_u.mutation.SetValidationInstructions(v)
	return _u
}

// SetNillableValidationInstructions sets the "validation_instructions" field if the given value is not nil.
func (_u *DocumentTypeUpdateOne) SetNillableValidationInstructions(v *string) *DocumentTypeUpdateOne {
	if v != nil {
		_u.SetValidationInstructions(*v)
	}
	return _u
}

// ClearValidationInstructions clears the value of the "validation_instructions" field.
func (_u *DocumentTypeUpdateOne) ClearValidationInstructions() *DocumentTypeUpdateOne {
	_u.mutation.ClearValidationInstructions()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *DocumentTypeUpdateOne) SetModelName(v string) *DocumentTypeUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *DocumentTypeUpdateOne) SetNillableModelName(v *string) *DocumentTypeUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetProviderName sets the "provider_name" field.
func (_u *DocumentTypeUpdateOne) SetProviderName(v string) *DocumentTypeUpdateOne {
	_u.mutation.SetProviderName(v)
	return _u
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_u *DocumentTypeUpdateOne) SetNillableProviderName(v *string) *DocumentTypeUpdateOne {
	if v != nil {
		_u.SetProviderName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *DocumentTypeUpdateOne) SetSystemPrompt(v string) *DocumentTypeUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *DocumentTypeUpdateOne) SetNillableSystemPrompt(v *string) *DocumentTypeUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *DocumentTypeUpdateOne) ClearSystemPrompt() *DocumentTypeUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *DocumentTypeUpdateOne) SetWebhookURL(v string) *DocumentTypeUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *DocumentTypeUpdateOne) SetNillableWebhookURL(v *string) *DocumentTypeUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *DocumentTypeUpdateOne) ClearWebhookURL() *DocumentTypeUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentTypeUpdateOne) SetUpdatedAt(v time.Time) *DocumentTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *DocumentTypeUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *DocumentTypeUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *DocumentTypeUpdateOne) AddDocuments(v ...*Document) *DocumentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *DocumentTypeUpdateOne) AddBatchIDs(ids ...uuid.UUID) *DocumentTypeUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *DocumentTypeUpdateOne) AddBatches(v ...*Batch) *DocumentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the DocumentTypeMutation object of the builder.
func (_u *DocumentTypeUpdateOne) Mutation() *DocumentTypeMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *DocumentTypeUpdateOne) ClearDocuments() *DocumentTypeUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *DocumentTypeUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *DocumentTypeUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *DocumentTypeUpdateOne) RemoveDocuments(v ...*Document) *DocumentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *DocumentTypeUpdateOne) ClearBatches() *DocumentTypeUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *DocumentTypeUpdateOne) RemoveBatchIDs(ids ...uuid.UUID) *DocumentTypeUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *DocumentTypeUpdateOne) RemoveBatches(v ...*Batch) *DocumentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Where appends a list predicates to the DocumentTypeUpdate builder.
func (_u *DocumentTypeUpdateOne) Where(ps ...predicate.DocumentType) *DocumentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentTypeUpdateOne) Select(field string, fields ...string) *DocumentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentType entity.
func (_u *DocumentTypeUpdateOne) Save(ctx context.Context) (*DocumentType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentTypeUpdateOne) SaveX(ctx context.Context) *DocumentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := documenttype.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "DocumentType.model_name": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentTypeUpdateOne) sqlSave(ctx context.Context) (_node *DocumentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenttype.Table, documenttype.Columns, sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documenttype.FieldID)
		for _, f := range fields {
			if !documenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documenttype.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(documenttype.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttype.FieldSchema, value)
		})
	}
	if value, ok := _u.mutation.ValidationInstructions(); ok {
		_spec.SetField(documenttype.FieldValidationInstructions, field.TypeString, value)
	}
	if _u.mutation.ValidationInstructionsCleared() {
		_spec.ClearField(documenttype.FieldValidationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(documenttype.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderName(); ok {
		_spec.SetField(documenttype.FieldProviderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(documenttype.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(documenttype.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(documenttype.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(documenttype.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.DocumentsTable,
			Columns: []string{documenttype.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.DocumentsTable,
			Columns: []string{documenttype.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.DocumentsTable,
			Columns: []string{documenttype.DocumentsColumn},
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
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.BatchesTable,
			Columns: []string{documenttype.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.BatchesTable,
			Columns: []string{documenttype.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documenttype.BatchesTable,
			Columns: []string{documenttype.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
