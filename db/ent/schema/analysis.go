package schema

import (
	"encoding/json"
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

// Analysis is one immutable record per pipeline run. Rows are inserted once
// at the run's terminal outcome and never updated.
type Analysis struct{ ent.Schema }

func (Analysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis"},
	}
}

func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("owner_id").NotEmpty(),
		field.String("query").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.AnalysisStatuses...)),
		field.JSON("local_summary", json.RawMessage{}).Optional(),
		field.JSON("stage_results", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Float("processing_time_seconds").Default(0),
		field.Int("text_length").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("analyses").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
		index.Fields("owner_id"),
	}
}
