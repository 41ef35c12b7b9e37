package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

type DocumentType struct{ ent.Schema }

func (DocumentType) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_type"},
	}
}

func (DocumentType) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		// structural description of the target extraction JSON
		field.JSON("schema", json.RawMessage{}),
		field.String("validation_instructions").Optional().Nillable(),
		field.String("model_name").NotEmpty(),
		field.String("provider_name").Default("openai"),
		field.String("system_prompt").Optional().Nillable(),
		field.String("webhook_url").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("batches", Batch.Type),
	}
}
