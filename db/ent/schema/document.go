package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_type_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("storage_ref").NotEmpty(),
		field.String("status").Default(string(constants.DocumentStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		// schema pinned at extraction/approval time, for audit
		field.JSON("schema_snapshot", json.RawMessage{}).Optional(),
		field.String("rejection_reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_type", DocumentType.Type).
			Ref("documents").
			Field("document_type_id").
			Unique().
			Required(),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_type_id", "status", "created_at"),
		index.Fields("storage_ref"),
	}
}
