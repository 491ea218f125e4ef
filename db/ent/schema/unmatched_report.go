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
)

type UnmatchedReport struct{ ent.Schema }

func (UnmatchedReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "unmatched_reports"},
	}
}

func (UnmatchedReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("report_key").NotEmpty(),
		// storage location of the original upload; the file itself is never
		// moved or deleted by reconciliation
		field.String("file_path").NotEmpty(),
		field.String("reason").NotEmpty(),
		field.Bool("resolved").Default(false),
		// set when staff manually assign the report to a document
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("resolved_at").Optional().Nillable(),
	}
}

func (UnmatchedReport) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY unmatched reports -> ONE document (after manual assignment)
		edge.From("document", Document.Type).
			Ref("unmatched_reports").
			Field("document_id").
			Unique(),
	}
}

func (UnmatchedReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_key"),
		index.Fields("resolved", "created_at"),
		// one queue row per stored file
		index.Fields("file_path").Unique(),
	}
}
