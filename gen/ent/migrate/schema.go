// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisColumns holds the columns for the "analysis" table.
	AnalysisColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "query", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString},
		{Name: "local_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "stage_results", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "text_length", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// AnalysisTable holds the schema information for the "analysis" table.
	AnalysisTable = &schema.Table{
		Name:       "analysis",
		Columns:    AnalysisColumns,
		PrimaryKey: []*schema.Column{AnalysisColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_document_analyses",
				Columns:    []*schema.Column{AnalysisColumns[10]},
				RefColumns: []*schema.Column{DocumentColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisColumns[10], AnalysisColumns[9]},
			},
			{
				Name:    "analysis_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisColumns[1]},
			},
		},
	}
	// DocumentColumns holds the columns for the "document" table.
	DocumentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/pdf"},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt, Default: 0},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "analysis_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_seconds", Type: field.TypeFloat64, Nullable: true},
	}
	// DocumentTable holds the schema information for the "document" table.
	DocumentTable = &schema.Table{
		Name:       "document",
		Columns:    DocumentColumns,
		PrimaryKey: []*schema.Column{DocumentColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[1], DocumentColumns[8]},
			},
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisTable,
		DocumentTable,
	}
)

func init() {
	AnalysisTable.ForeignKeys[0].RefTable = DocumentTable
	AnalysisTable.Annotation = &entsql.Annotation{
		Table: "analysis",
	}
	DocumentTable.Annotation = &entsql.Annotation{
		Table: "document",
	}
}
