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

	"github.com/simdocs-io/report-reconciler/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define composite indexes
		field.UUID("customer_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		// normalized identity key, derived from filename at upload time
		field.String("doc_key").NotEmpty(),
		field.String("status").
			Default("AWAITING").
			Validate(utils.EnumValidator("AWAITING", "COMPLETED")),
		field.String("similarity_report_path").Optional().Nillable(),
		field.String("ai_report_path").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("review_reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE customer
		edge.From("customer", Customer.Type).
			Ref("documents").
			Field("customer_id").
			Required().
			Unique(),
		// ONE document -> MANY manually resolved unmatched reports
		edge.To("unmatched_reports", UnmatchedReport.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_key", "status"),
		index.Fields("customer_id", "created_at"),
	}
}
