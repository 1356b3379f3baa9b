// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/utiliscan/meterscan/db/ent/schema"
	"github.com/utiliscan/meterscan/gen/ent/device"
	"github.com/utiliscan/meterscan/gen/ent/reading"
	"github.com/utiliscan/meterscan/gen/ent/scanfile"
	"github.com/utiliscan/meterscan/gen/ent/scanjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deviceFields := schema.Device{}.Fields()
	_ = deviceFields
	// deviceDescName is the schema descriptor for name field.
	deviceDescName := deviceFields[1].Descriptor()
	// device.NameValidator is a validator for the "name" field. It is called by the builders before save.
	device.NameValidator = deviceDescName.Validators[0].(func(string) error)
	// deviceDescCreatedAt is the schema descriptor for created_at field.
	deviceDescCreatedAt := deviceFields[4].Descriptor()
	// device.DefaultCreatedAt holds the default value on creation for the created_at field.
	device.DefaultCreatedAt = deviceDescCreatedAt.Default.(func() time.Time)
	// deviceDescUpdatedAt is the schema descriptor for updated_at field.
	deviceDescUpdatedAt := deviceFields[5].Descriptor()
	// device.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	device.DefaultUpdatedAt = deviceDescUpdatedAt.Default.(func() time.Time)
	// device.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	device.UpdateDefaultUpdatedAt = deviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deviceDescID is the schema descriptor for id field.
	deviceDescID := deviceFields[0].Descriptor()
	// device.DefaultID holds the default value on creation for the id field.
	device.DefaultID = deviceDescID.Default.(func() uuid.UUID)
	readingFields := schema.Reading{}.Fields()
	_ = readingFields
	// readingDescItemID is the schema descriptor for item_id field.
	readingDescItemID := readingFields[3].Descriptor()
	// reading.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reading.ItemIDValidator = readingDescItemID.Validators[0].(func(string) error)
	// readingDescLabel is the schema descriptor for label field.
	readingDescLabel := readingFields[4].Descriptor()
	// reading.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	reading.LabelValidator = readingDescLabel.Validators[0].(func(string) error)
	// readingDescConfidence is the schema descriptor for confidence field.
	readingDescConfidence := readingFields[6].Descriptor()
	// reading.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	reading.ConfidenceValidator = func() func(int) error {
		validators := readingDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readingDescLineIndex is the schema descriptor for line_index field.
	readingDescLineIndex := readingFields[7].Descriptor()
	// reading.LineIndexValidator is a validator for the "line_index" field. It is called by the builders before save.
	reading.LineIndexValidator = readingDescLineIndex.Validators[0].(func(int) error)
	// readingDescCreatedAt is the schema descriptor for created_at field.
	readingDescCreatedAt := readingFields[8].Descriptor()
	// reading.DefaultCreatedAt holds the default value on creation for the created_at field.
	reading.DefaultCreatedAt = readingDescCreatedAt.Default.(func() time.Time)
	// readingDescID is the schema descriptor for id field.
	readingDescID := readingFields[0].Descriptor()
	// reading.DefaultID holds the default value on creation for the id field.
	reading.DefaultID = readingDescID.Default.(func() uuid.UUID)
	scanfileFields := schema.ScanFile{}.Fields()
	_ = scanfileFields
	// scanfileDescSourcePath is the schema descriptor for source_path field.
	scanfileDescSourcePath := scanfileFields[2].Descriptor()
	// scanfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	scanfile.SourcePathValidator = scanfileDescSourcePath.Validators[0].(func(string) error)
	// scanfileDescContentHash is the schema descriptor for content_hash field.
	scanfileDescContentHash := scanfileFields[3].Descriptor()
	// scanfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	scanfile.ContentHashValidator = scanfileDescContentHash.Validators[0].(func([]byte) error)
	// scanfileDescFilename is the schema descriptor for filename field.
	scanfileDescFilename := scanfileFields[4].Descriptor()
	// scanfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	scanfile.FilenameValidator = scanfileDescFilename.Validators[0].(func(string) error)
	// scanfileDescFileExt is the schema descriptor for file_ext field.
	scanfileDescFileExt := scanfileFields[5].Descriptor()
	// scanfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	scanfile.FileExtValidator = scanfileDescFileExt.Validators[0].(func(string) error)
	// scanfileDescFileSize is the schema descriptor for file_size field.
	scanfileDescFileSize := scanfileFields[6].Descriptor()
	// scanfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	scanfile.FileSizeValidator = scanfileDescFileSize.Validators[0].(func(int) error)
	// scanfileDescUploadedAt is the schema descriptor for uploaded_at field.
	scanfileDescUploadedAt := scanfileFields[7].Descriptor()
	// scanfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	scanfile.DefaultUploadedAt = scanfileDescUploadedAt.Default.(func() time.Time)
	// scanfileDescID is the schema descriptor for id field.
	scanfileDescID := scanfileFields[0].Descriptor()
	// scanfile.DefaultID holds the default value on creation for the id field.
	scanfile.DefaultID = scanfileDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescFormat is the schema descriptor for format field.
	scanjobDescFormat := scanjobFields[3].Descriptor()
	// scanjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	scanjob.FormatValidator = func() func(string) error {
		validators := scanjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[4].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescNeedsReview is the schema descriptor for needs_review field.
	scanjobDescNeedsReview := scanjobFields[9].Descriptor()
	// scanjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	scanjob.DefaultNeedsReview = scanjobDescNeedsReview.Default.(bool)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
