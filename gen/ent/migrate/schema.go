// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchColumns holds the columns for the "batch" table.
	BatchColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "total", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_type_id", Type: field.TypeUUID},
	}
	// BatchTable holds the schema information for the "batch" table.
	BatchTable = &schema.Table{
		Name:       "batch",
		Columns:    BatchColumns,
		PrimaryKey: []*schema.Column{BatchColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batch_document_type_batches",
				Columns:    []*schema.Column{BatchColumns[9]},
				RefColumns: []*schema.Column{DocumentTypeColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batch_document_type_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchColumns[9], BatchColumns[4], BatchColumns[7]},
			},
		},
	}
	// DocumentColumns holds the columns for the "document" table.
	DocumentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "schema_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_type_id", Type: field.TypeUUID},
	}
	// DocumentTable holds the schema information for the "document" table.
	DocumentTable = &schema.Table{
		Name:       "document",
		Columns:    DocumentColumns,
		PrimaryKey: []*schema.Column{DocumentColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_document_type_documents",
				Columns:    []*schema.Column{DocumentColumns[9]},
				RefColumns: []*schema.Column{DocumentTypeColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_document_type_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[9], DocumentColumns[3], DocumentColumns[7]},
			},
			{
				Name:    "document_storage_ref",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[2]},
			},
		},
	}
	// DocumentTypeColumns holds the columns for the "document_type" table.
	DocumentTypeColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "schema", Type: field.TypeJSON},
		{Name: "validation_instructions", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "provider_name", Type: field.TypeString, Default: "openai"},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentTypeTable holds the schema information for the "document_type" table.
	DocumentTypeTable = &schema.Table{
		Name:       "document_type",
		Columns:    DocumentTypeColumns,
		PrimaryKey: []*schema.Column{DocumentTypeColumns[0]},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "partial_data", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeUUID, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_batch_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[9]},
				RefColumns: []*schema.Column{BatchColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_document_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{DocumentColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_document_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10], ExtractJobColumns[1]},
			},
			{
				Name:    "extractjob_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[9], ExtractJobColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchTable,
		DocumentTable,
		DocumentTypeTable,
		ExtractJobTable,
	}
)

func init() {
	BatchTable.ForeignKeys[0].RefTable = DocumentTypeTable
	BatchTable.Annotation = &entsql.Annotation{
		Table: "batch",
	}
	DocumentTable.ForeignKeys[0].RefTable = DocumentTypeTable
	DocumentTable.Annotation = &entsql.Annotation{
		Table: "document",
	}
	DocumentTypeTable.Annotation = &entsql.Annotation{
		Table: "document_type",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = BatchTable
	ExtractJobTable.ForeignKeys[1].RefTable = DocumentTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
}
