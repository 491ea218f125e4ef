// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/simdocs-io/report-reconciler/db/ent/schema"
	"github.com/simdocs-io/report-reconciler/gen/ent/customer"
	"github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescEmail is the schema descriptor for email field.
	customerDescEmail := customerFields[2].Descriptor()
	// customer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	customer.EmailValidator = customerDescEmail.Validators[0].(func(string) error)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[3].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[4].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescDocKey is the schema descriptor for doc_key field.
	documentDescDocKey := documentFields[3].Descriptor()
	// document.DocKeyValidator is a validator for the "doc_key" field. It is called by the builders before save.
	document.DocKeyValidator = documentDescDocKey.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescNeedsReview is the schema descriptor for needs_review field.
	documentDescNeedsReview := documentFields[7].Descriptor()
	// document.DefaultNeedsReview holds the default value on creation for the needs_review field.
	document.DefaultNeedsReview = documentDescNeedsReview.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	unmatchedreportFields := schema.UnmatchedReport{}.Fields()
	_ = unmatchedreportFields
	// unmatchedreportDescFilename is the schema descriptor for filename field.
	unmatchedreportDescFilename := unmatchedreportFields[1].Descriptor()
	// unmatchedreport.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	unmatchedreport.FilenameValidator = unmatchedreportDescFilename.Validators[0].(func(string) error)
	// unmatchedreportDescReportKey is the schema descriptor for report_key field.
	unmatchedreportDescReportKey := unmatchedreportFields[2].Descriptor()
	// unmatchedreport.ReportKeyValidator is a validator for the "report_key" field. It is called by the builders before save.
	unmatchedreport.ReportKeyValidator = unmatchedreportDescReportKey.Validators[0].(func(string) error)
	// unmatchedreportDescFilePath is the schema descriptor for file_path field.
	unmatchedreportDescFilePath := unmatchedreportFields[3].Descriptor()
	// unmatchedreport.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	unmatchedreport.FilePathValidator = unmatchedreportDescFilePath.Validators[0].(func(string) error)
	// unmatchedreportDescReason is the schema descriptor for reason field.
	unmatchedreportDescReason := unmatchedreportFields[4].Descriptor()
	// unmatchedreport.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	unmatchedreport.ReasonValidator = unmatchedreportDescReason.Validators[0].(func(string) error)
	// unmatchedreportDescResolved is the schema descriptor for resolved field.
	unmatchedreportDescResolved := unmatchedreportFields[5].Descriptor()
	// unmatchedreport.DefaultResolved holds the default value on creation for the resolved field.
	unmatchedreport.DefaultResolved = unmatchedreportDescResolved.Default.(bool)
	// unmatchedreportDescCreatedAt is the schema descriptor for created_at field.
	unmatchedreportDescCreatedAt := unmatchedreportFields[7].Descriptor()
	// unmatchedreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	unmatchedreport.DefaultCreatedAt = unmatchedreportDescCreatedAt.Default.(func() time.Time)
	// unmatchedreportDescID is the schema descriptor for id field.
	unmatchedreportDescID := unmatchedreportFields[0].Descriptor()
	// unmatchedreport.DefaultID holds the default value on creation for the id field.
	unmatchedreport.DefaultID = unmatchedreportDescID.Default.(func() uuid.UUID)
}
