package schema

import (
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

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_type_id", uuid.UUID{}),
		field.Int("total").NonNegative(),
		field.Int("completed").Default(0).NonNegative(),
		field.Int("failed").Default(0).NonNegative(),
		field.String("status").Default(string(constants.BatchStatusPending)).
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		field.String("webhook_url").Optional().Nillable(),
		field.String("created_by").Default("system"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_type", DocumentType.Type).
			Ref("batches").
			Field("document_type_id").
			Unique().
			Required(),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_type_id", "status", "created_at"),
	}
}
