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
	"github.com/formlift/docextract/gen/ent/batch"
	"github.com/formlift/docextract/gen/ent/document"
	"github.com/formlift/docextract/gen/ent/documenttype"
	"github.com/google/uuid"
)

// DocumentTypeCreate is the builder for creating a DocumentType entity.
type DocumentTypeCreate struct {
	config
	mutation *DocumentTypeMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *DocumentTypeCreate) SetName(v string) *DocumentTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSchema sets the "schema" field.
func (_c *DocumentTypeCreate) SetSchema(v json.RawMessage) *DocumentTypeCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetValidationInstructions sets the "validation_instructions" field.
func (_c *DocumentTypeCreate) SetValidationInstructions(v string) *DocumentTypeCreate {
	_c.mutation.SetValidationInstructions(v)
	return _c
}

// SetNillableValidationInstructions sets the "validation_instructions" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableValidationInstructions(v *string) *DocumentTypeCreate {
	if v != nil {
		_c.SetValidationInstructions(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *DocumentTypeCreate) SetModelName(v string) *DocumentTypeCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetProviderName sets the "provider_name" field.
func (_c *DocumentTypeCreate) SetProviderName(v string) *DocumentTypeCreate {
	_c.mutation.SetProviderName(v)
	return _c
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableProviderName(v *string) *DocumentTypeCreate {
	if v != nil {
		_c.SetProviderName(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *DocumentTypeCreate) SetSystemPrompt(v string) *DocumentTypeCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableSystemPrompt(v *string) *DocumentTypeCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *DocumentTypeCreate) SetWebhookURL(v string) *DocumentTypeCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableWebhookURL(v *string) *DocumentTypeCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentTypeCreate) SetCreatedAt(v time.Time) *DocumentTypeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableCreatedAt(v *time.Time) *DocumentTypeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentTypeCreate) SetUpdatedAt(v time.Time) *DocumentTypeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableUpdatedAt(v *time.Time) *DocumentTypeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentTypeCreate) SetID(v uuid.UUID) *DocumentTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentTypeCreate) SetNillableID(v *uuid.UUID) *DocumentTypeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *DocumentTypeCreate) AddDocumentIDs(ids ...uuid.UUID) *DocumentTypeCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *DocumentTypeCreate) AddDocuments(v ...*Document) *DocumentTypeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_c *DocumentTypeCreate) AddBatchIDs(ids ...uuid.UUID) *DocumentTypeCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_c *DocumentTypeCreate) AddBatches(v ...*Batch) *DocumentTypeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// Mutation returns the DocumentTypeMutation object of the builder.
func (_c *DocumentTypeCreate) Mutation() *DocumentTypeMutation {
	return _c.mutation
}

// Save creates the DocumentType in the database.
func (_c *DocumentTypeCreate) Save(ctx context.Context) (*DocumentType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentTypeCreate) SaveX(ctx context.Context) *DocumentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentTypeCreate) defaults() {
	if _, ok := _c.mutation.ProviderName(); !ok {
		v := documenttype.DefaultProviderName
		_c.mutation.SetProviderName(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documenttype.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documenttype.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documenttype.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentTypeCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DocumentType.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := documenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentType.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Schema(); !ok {
		return &ValidationError{Name: "schema", err: errors.New(`ent: missing required field "DocumentType.schema"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "DocumentType.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := documenttype.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "DocumentType.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderName(); !ok {
		return &ValidationError{Name: "provider_name", err: errors.New(`ent: missing required field "DocumentType.provider_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentType.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentType.updated_at"`)}
	}
	return nil
}

func (_c *DocumentTypeCreate) sqlSave(ctx context.Context) (*DocumentType, error) {
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

func (_c *DocumentTypeCreate) createSpec() (*DocumentType, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documenttype.Table, sqlgraph.NewFieldSpec(documenttype.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(documenttype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(documenttype.FieldSchema, field.TypeJSON, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.ValidationInstructions(); ok {
		_spec.SetField(documenttype.FieldValidationInstructions, field.TypeString, value)
		_node.ValidationInstructions = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(documenttype.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.ProviderName(); ok {
		_spec.SetField(documenttype.FieldProviderName, field.TypeString, value)
		_node.ProviderName = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(documenttype.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = &value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(documenttype.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documenttype.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documenttype.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentTypeCreateBulk is the builder for creating many DocumentType entities in bulk.
type DocumentTypeCreateBulk struct {
	config
	err      error
	builders []*DocumentTypeCreate
}

// Save creates the DocumentType entities in the database.
func (_c *DocumentTypeCreateBulk) Save(ctx context.Context) ([]*DocumentType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentTypeMutation)
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
func (_c *DocumentTypeCreateBulk) SaveX(ctx context.Context) []*DocumentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
