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

type Reading struct{ ent.Schema }

func (Reading) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "readings"},
	}
}

func (Reading) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("job_id", uuid.UUID{}),
		field.UUID("device_id", uuid.UUID{}),
		// identifier minted during extraction, stable within its scan
		field.String("item_id").NotEmpty(),
		field.String("label").NotEmpty(),
		field.String("value"),
		field.Int("confidence").Min(0).Max(100),
		field.Int("line_index").NonNegative(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Reading) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ScanJob.Type).
			Ref("readings").
			Field("job_id").
			Unique().
			Required(),
		edge.From("device", Device.Type).
			Ref("readings").
			Field("device_id").
			Unique().
			Required(),
	}
}

func (Reading) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "line_index"),
		index.Fields("device_id", "created_at"),
		index.Fields("device_id", "label"),
	}
}
