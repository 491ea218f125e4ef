// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "doc_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "AWAITING"},
		{Name: "similarity_report_path", Type: field.TypeString, Nullable: true},
		{Name: "ai_report_path", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "review_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_customers_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_doc_key_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2], DocumentsColumns[3]},
			},
			{
				Name:    "document_customer_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[8]},
			},
		},
	}
	// UnmatchedReportsColumns holds the columns for the "unmatched_reports" table.
	UnmatchedReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "report_key", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
	}
	// UnmatchedReportsTable holds the schema information for the "unmatched_reports" table.
	UnmatchedReportsTable = &schema.Table{
		Name:       "unmatched_reports",
		Columns:    UnmatchedReportsColumns,
		PrimaryKey: []*schema.Column{UnmatchedReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "unmatched_reports_documents_unmatched_reports",
				Columns:    []*schema.Column{UnmatchedReportsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "unmatchedreport_report_key",
				Unique:  false,
				Columns: []*schema.Column{UnmatchedReportsColumns[2]},
			},
			{
				Name:    "unmatchedreport_resolved_created_at",
				Unique:  false,
				Columns: []*schema.Column{UnmatchedReportsColumns[5], UnmatchedReportsColumns[6]},
			},
			{
				Name:    "unmatchedreport_file_path",
				Unique:  true,
				Columns: []*schema.Column{UnmatchedReportsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		DocumentsTable,
		UnmatchedReportsTable,
	}
)

func init() {
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	DocumentsTable.ForeignKeys[0].RefTable = CustomersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	UnmatchedReportsTable.ForeignKeys[0].RefTable = DocumentsTable
	UnmatchedReportsTable.Annotation = &entsql.Annotation{
		Table: "unmatched_reports",
	}
}
