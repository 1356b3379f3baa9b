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
)

type ScanFile struct {
	ent.Schema
}

func (ScanFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_files"},
	}
}

func (ScanFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define a composite unique index
		field.UUID("device_id", uuid.UUID{}),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ScanFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE device
		edge.From("device", Device.Type).
			Ref("files").
			Field("device_id").
			Required().
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ScanJob.Type),
	}
}

func (ScanFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_id", "content_hash").Unique(),
		index.Fields("device_id", "uploaded_at"),
	}
}
