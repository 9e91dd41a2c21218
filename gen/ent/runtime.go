// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finsightlabs/finsight/db/ent/schema"
	"github.com/finsightlabs/finsight/gen/ent/analysis"
	"github.com/finsightlabs/finsight/gen/ent/document"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescOwnerID is the schema descriptor for owner_id field.
	analysisDescOwnerID := analysisFields[2].Descriptor()
	// analysis.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	analysis.OwnerIDValidator = analysisDescOwnerID.Validators[0].(func(string) error)
	// analysisDescStatus is the schema descriptor for status field.
	analysisDescStatus := analysisFields[4].Descriptor()
	// analysis.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysis.StatusValidator = func() func(string) error {
		validators := analysisDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisDescProcessingTimeSeconds is the schema descriptor for processing_time_seconds field.
	analysisDescProcessingTimeSeconds := analysisFields[8].Descriptor()
	// analysis.DefaultProcessingTimeSeconds holds the default value on creation for the processing_time_seconds field.
	analysis.DefaultProcessingTimeSeconds = analysisDescProcessingTimeSeconds.Default.(float64)
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[10].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	// analysisDescID is the schema descriptor for id field.
	analysisDescID := analysisFields[0].Descriptor()
	// analysis.DefaultID holds the default value on creation for the id field.
	analysis.DefaultID = analysisDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescOwnerID is the schema descriptor for owner_id field.
	documentDescOwnerID := documentFields[1].Descriptor()
	// document.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	document.OwnerIDValidator = documentDescOwnerID.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[3].Descriptor()
	// document.DefaultContentType holds the default value on creation for the content_type field.
	document.DefaultContentType = documentDescContentType.Default.(string)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[4].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.DefaultFileSize holds the default value on creation for the file_size field.
	document.DefaultFileSize = documentDescFileSize.Default.(int)
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[8].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
}
