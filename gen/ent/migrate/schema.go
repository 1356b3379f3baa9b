// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DevicesColumns holds the columns for the "devices" table.
	DevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "meter_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DevicesTable holds the schema information for the "devices" table.
	DevicesTable = &schema.Table{
		Name:       "devices",
		Columns:    DevicesColumns,
		PrimaryKey: []*schema.Column{DevicesColumns[0]},
	}
	// ReadingsColumns holds the columns for the "readings" table.
	ReadingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_id", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "line_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "device_id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ReadingsTable holds the schema information for the "readings" table.
	ReadingsTable = &schema.Table{
		Name:       "readings",
		Columns:    ReadingsColumns,
		PrimaryKey: []*schema.Column{ReadingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "readings_devices_readings",
				Columns:    []*schema.Column{ReadingsColumns[7]},
				RefColumns: []*schema.Column{DevicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "readings_scan_job_readings",
				Columns:    []*schema.Column{ReadingsColumns[8]},
				RefColumns: []*schema.Column{ScanJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reading_job_id_line_index",
				Unique:  false,
				Columns: []*schema.Column{ReadingsColumns[8], ReadingsColumns[5]},
			},
			{
				Name:    "reading_device_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReadingsColumns[7], ReadingsColumns[6]},
			},
			{
				Name:    "reading_device_id_label",
				Unique:  false,
				Columns: []*schema.Column{ReadingsColumns[7], ReadingsColumns[2]},
			},
		},
	}
	// ScanFilesColumns holds the columns for the "scan_files" table.
	ScanFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "device_id", Type: field.TypeUUID},
	}
	// ScanFilesTable holds the schema information for the "scan_files" table.
	ScanFilesTable = &schema.Table{
		Name:       "scan_files",
		Columns:    ScanFilesColumns,
		PrimaryKey: []*schema.Column{ScanFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_files_devices_files",
				Columns:    []*schema.Column{ScanFilesColumns[7]},
				RefColumns: []*schema.Column{DevicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanfile_device_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ScanFilesColumns[7], ScanFilesColumns[2]},
			},
			{
				Name:    "scanfile_device_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ScanFilesColumns[7], ScanFilesColumns[6]},
			},
		},
	}
	// ScanJobColumns holds the columns for the "scan_job" table.
	ScanJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "engine_params", Type: field.TypeJSON, Nullable: true},
		{Name: "device_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ScanJobTable holds the schema information for the "scan_job" table.
	ScanJobTable = &schema.Table{
		Name:       "scan_job",
		Columns:    ScanJobColumns,
		PrimaryKey: []*schema.Column{ScanJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_job_devices_jobs",
				Columns:    []*schema.Column{ScanJobColumns[11]},
				RefColumns: []*schema.Column{DevicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "scan_job_scan_files_jobs",
				Columns:    []*schema.Column{ScanJobColumns[12]},
				RefColumns: []*schema.Column{ScanFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_device_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[11], ScanJobColumns[4], ScanJobColumns[2]},
			},
			{
				Name:    "scanjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DevicesTable,
		ReadingsTable,
		ScanFilesTable,
		ScanJobTable,
	}
)

func init() {
	DevicesTable.Annotation = &entsql.Annotation{
		Table: "devices",
	}
	ReadingsTable.ForeignKeys[0].RefTable = DevicesTable
	ReadingsTable.ForeignKeys[1].RefTable = ScanJobTable
	ReadingsTable.Annotation = &entsql.Annotation{
		Table: "readings",
	}
	ScanFilesTable.ForeignKeys[0].RefTable = DevicesTable
	ScanFilesTable.Annotation = &entsql.Annotation{
		Table: "scan_files",
	}
	ScanJobTable.ForeignKeys[0].RefTable = DevicesTable
	ScanJobTable.ForeignKeys[1].RefTable = ScanFilesTable
	ScanJobTable.Annotation = &entsql.Annotation{
		Table: "scan_job",
	}
}
