// Code generated by ent, DO NOT EDIT.

package documenttype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/formlift/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldName, v))
}

// ValidationInstructions applies equality check predicate on the "validation_instructions" field. It's identical to ValidationInstructionsEQ.
func ValidationInstructions(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldValidationInstructions, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldModelName, v))
}

// ProviderName applies equality check predicate on the "provider_name" field. It's identical to ProviderNameEQ.
func ProviderName(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldProviderName, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldSystemPrompt, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldWebhookURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContainsFold(FieldName, v))
}

// ValidationInstructionsEQ applies the EQ predicate on the "validation_instructions" field.
func ValidationInstructionsEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldValidationInstructions, v))
}

// ValidationInstructionsNEQ applies the NEQ predicate on the "validation_instructions" field.
func ValidationInstructionsNEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldValidationInstructions, v))
}

// ValidationInstructionsIn applies the In predicate on the "validation_instructions" field.
func ValidationInstructionsIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldValidationInstructions, vs...))
}

// ValidationInstructionsNotIn applies the NotIn predicate on the "validation_instructions" field.
func ValidationInstructionsNotIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldValidationInstructions, vs...))
}

// ValidationInstructionsGT applies the GT predicate on the "validation_instructions" field.
func ValidationInstructionsGT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldValidationInstructions, v))
}

// ValidationInstructionsGTE applies the GTE predicate on the "validation_instructions" field.
func ValidationInstructionsGTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldValidationInstructions, v))
}

// ValidationInstructionsLT applies the LT predicate on the "validation_instructions" field.
func ValidationInstructionsLT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldValidationInstructions, v))
}

// ValidationInstructionsLTE applies the LTE predicate on the "validation_instructions" field.
func ValidationInstructionsLTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldValidationInstructions, v))
}

// ValidationInstructionsContains applies the Contains predicate on the "validation_instructions" field.
func ValidationInstructionsContains(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContains(FieldValidationInstructions, v))
}

// ValidationInstructionsHasPrefix applies the HasPrefix predicate on the "validation_instructions" field.
func ValidationInstructionsHasPrefix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasPrefix(FieldValidationInstructions, v))
}

// ValidationInstructionsHasSuffix applies the HasSuffix predicate on the "validation_instructions" field.
func ValidationInstructionsHasSuffix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasSuffix(FieldValidationInstructions, v))
}

// ValidationInstructionsIsNil applies the IsNil predicate on the "validation_instructions" field.
func ValidationInstructionsIsNil() predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIsNull(FieldValidationInstructions))
}

// ValidationInstructionsNotNil applies the NotNil predicate on the "validation_instructions" field.
func ValidationInstructionsNotNil() predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotNull(FieldValidationInstructions))
}

// ValidationInstructionsEqualFold applies the EqualFold predicate on the "validation_instructions" field.
func ValidationInstructionsEqualFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEqualFold(FieldValidationInstructions, v))
}

// ValidationInstructionsContainsFold applies the ContainsFold predicate on the "validation_instructions" field.
func ValidationInstructionsContainsFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContainsFold(FieldValidationInstructions, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContainsFold(FieldModelName, v))
}

// ProviderNameEQ applies the EQ predicate on the "provider_name" field.
func ProviderNameEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldProviderName, v))
}

// ProviderNameNEQ applies the NEQ predicate on the "provider_name" field.
func ProviderNameNEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldProviderName, v))
}

// ProviderNameIn applies the In predicate on the "provider_name" field.
func ProviderNameIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldProviderName, vs...))
}

// ProviderNameNotIn applies the NotIn predicate on the "provider_name" field.
func ProviderNameNotIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldProviderName, vs...))
}

// ProviderNameGT applies the GT predicate on the "provider_name" field.
func ProviderNameGT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldProviderName, v))
}

// ProviderNameGTE applies the GTE predicate on the "provider_name" field.
func ProviderNameGTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldProviderName, v))
}

// ProviderNameLT applies the LT predicate on the "provider_name" field.
func ProviderNameLT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldProviderName, v))
}

// ProviderNameLTE applies the LTE predicate on the "provider_name" field.
func ProviderNameLTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldProviderName, v))
}

// ProviderNameContains applies the Contains predicate on the "provider_name" field.
func ProviderNameContains(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContains(FieldProviderName, v))
}

// ProviderNameHasPrefix applies the HasPrefix predicate on the "provider_name" field.
func ProviderNameHasPrefix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasPrefix(FieldProviderName, v))
}

// ProviderNameHasSuffix applies the HasSuffix predicate on the "provider_name" field.
func ProviderNameHasSuffix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasSuffix(FieldProviderName, v))
}

// ProviderNameEqualFold applies the EqualFold predicate on the "provider_name" field.
func ProviderNameEqualFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEqualFold(FieldProviderName, v))
}

// ProviderNameContainsFold applies the ContainsFold predicate on the "provider_name" field.
func ProviderNameContainsFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContainsFold(FieldProviderName, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptIsNil applies the IsNil predicate on the "system_prompt" field.
func SystemPromptIsNil() predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIsNull(FieldSystemPrompt))
}

// SystemPromptNotNil applies the NotNil predicate on the "system_prompt" field.
func SystemPromptNotNil() predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotNull(FieldSystemPrompt))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldContainsFold(FieldWebhookURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DocumentType {
	return predicate.DocumentType(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.DocumentType {
	return predicate.DocumentType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.DocumentType {
	return predicate.DocumentType(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBatches applies the HasEdge predicate on the "batches" edge.
func HasBatches() predicate.DocumentType {
	return predicate.DocumentType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchesWith applies the HasEdge predicate on the "batches" edge with a given conditions (other predicates).
func HasBatchesWith(preds ...predicate.Batch) predicate.DocumentType {
	return predicate.DocumentType(func(s *sql.Selector) {
		step := newBatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentType) predicate.DocumentType {
	return predicate.DocumentType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentType) predicate.DocumentType {
	return predicate.DocumentType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentType) predicate.DocumentType {
	return predicate.DocumentType(sql.NotPredicates(p))
}
