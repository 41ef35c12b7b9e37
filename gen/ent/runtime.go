// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/formlift/docextract/db/ent/schema"
	"github.com/formlift/docextract/gen/ent/batch"
	"github.com/formlift/docextract/gen/ent/document"
	"github.com/formlift/docextract/gen/ent/documenttype"
	"github.com/formlift/docextract/gen/ent/extractjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescTotal is the schema descriptor for total field.
	batchDescTotal := batchFields[2].Descriptor()
	// batch.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	batch.TotalValidator = batchDescTotal.Validators[0].(func(int) error)
	// batchDescCompleted is the schema descriptor for completed field.
	batchDescCompleted := batchFields[3].Descriptor()
	// batch.DefaultCompleted holds the default value on creation for the completed field.
	batch.DefaultCompleted = batchDescCompleted.Default.(int)
	// batch.CompletedValidator is a validator for the "completed" field. It is called by the builders before save.
	batch.CompletedValidator = batchDescCompleted.Validators[0].(func(int) error)
	// batchDescFailed is the schema descriptor for failed field.
	batchDescFailed := batchFields[4].Descriptor()
	// batch.DefaultFailed holds the default value on creation for the failed field.
	batch.DefaultFailed = batchDescFailed.Default.(int)
	// batch.FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	batch.FailedValidator = batchDescFailed.Validators[0].(func(int) error)
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[5].Descriptor()
	// batch.DefaultStatus holds the default value on creation for the status field.
	batch.DefaultStatus = batchDescStatus.Default.(string)
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = batchDescStatus.Validators[0].(func(string) error)
	// batchDescCreatedBy is the schema descriptor for created_by field.
	batchDescCreatedBy := batchFields[7].Descriptor()
	// batch.DefaultCreatedBy holds the default value on creation for the created_by field.
	batch.DefaultCreatedBy = batchDescCreatedBy.Default.(string)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[8].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescStorageRef is the schema descriptor for storage_ref field.
	documentDescStorageRef := documentFields[3].Descriptor()
	// document.StorageRefValidator is a validator for the "storage_ref" field. It is called by the builders before save.
	document.StorageRefValidator = documentDescStorageRef.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[8].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[9].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documenttypeFields := schema.DocumentType{}.Fields()
	_ = documenttypeFields
	// documenttypeDescName is the schema descriptor for name field.
	documenttypeDescName := documenttypeFields[1].Descriptor()
	// documenttype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	documenttype.NameValidator = documenttypeDescName.Validators[0].(func(string) error)
	// documenttypeDescModelName is the schema descriptor for model_name field.
	documenttypeDescModelName := documenttypeFields[4].Descriptor()
	// documenttype.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	documenttype.ModelNameValidator = documenttypeDescModelName.Validators[0].(func(string) error)
	// documenttypeDescProviderName is the schema descriptor for provider_name field.
	documenttypeDescProviderName := documenttypeFields[5].Descriptor()
	// documenttype.DefaultProviderName holds the default value on creation for the provider_name field.
	documenttype.DefaultProviderName = documenttypeDescProviderName.Default.(string)
	// documenttypeDescCreatedAt is the schema descriptor for created_at field.
	documenttypeDescCreatedAt := documenttypeFields[8].Descriptor()
	// documenttype.DefaultCreatedAt holds the default value on creation for the created_at field.
	documenttype.DefaultCreatedAt = documenttypeDescCreatedAt.Default.(func() time.Time)
	// documenttypeDescUpdatedAt is the schema descriptor for updated_at field.
	documenttypeDescUpdatedAt := documenttypeFields[9].Descriptor()
	// documenttype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documenttype.DefaultUpdatedAt = documenttypeDescUpdatedAt.Default.(func() time.Time)
	// documenttype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documenttype.UpdateDefaultUpdatedAt = documenttypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documenttypeDescID is the schema descriptor for id field.
	documenttypeDescID := documenttypeFields[0].Descriptor()
	// documenttype.DefaultID holds the default value on creation for the id field.
	documenttype.DefaultID = documenttypeDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[3].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescProgressPercent is the schema descriptor for progress_percent field.
	extractjobDescProgressPercent := extractjobFields[4].Descriptor()
	// extractjob.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	extractjob.DefaultProgressPercent = extractjobDescProgressPercent.Default.(int)
	// extractjob.ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	extractjob.ProgressPercentValidator = func() func(int) error {
		validators := extractjobDescProgressPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress_percent int) error {
			for _, fn := range fns {
				if err := fn(progress_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescCreatedBy is the schema descriptor for created_by field.
	extractjobDescCreatedBy := extractjobFields[9].Descriptor()
	// extractjob.DefaultCreatedBy holds the default value on creation for the created_by field.
	extractjob.DefaultCreatedBy = extractjobDescCreatedBy.Default.(string)
	// extractjobDescCreatedAt is the schema descriptor for created_at field.
	extractjobDescCreatedAt := extractjobFields[10].Descriptor()
	// extractjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractjob.DefaultCreatedAt = extractjobDescCreatedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
}
