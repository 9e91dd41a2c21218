package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/db/ent/schema/utils"
)

// Document is one uploaded file tracked through the analysis lifecycle.
// Exactly one of analysis_completed_at / failed_at is set once the row
// leaves "processing"; error_message is present only on failure.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// owner_id is the already-authenticated actor, opaque to this service
		field.String("owner_id").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("content_type").Default(constants.PDFContentType),
		field.String("storage_path").NotEmpty(),
		field.Int("file_size").NonNegative().Default(0),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").
			Default(string(constants.DocStatusUploaded)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("analysis_completed_at").Optional().Nillable(),
		field.Time("failed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Float("processing_time_seconds").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY analysis records (re-analysis appends, never
		// mutates); records go with their document
		edge.To("analyses", Analysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("status"),
	}
}
