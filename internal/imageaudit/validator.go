package imageaudit

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// RecordValidator checks the image references of article records against an image root.
type RecordValidator struct {
	fileSystem FileSystem
	imageRoot  string
}

// NewRecordValidator constructs a validator resolving image paths against imageRoot.
func NewRecordValidator(fileSystem FileSystem, imageRoot string) *RecordValidator {
	return &RecordValidator{fileSystem: fileSystem, imageRoot: imageRoot}
}

// Validate reads the article at articlePath and reports its image issues.
// Unreadable files, malformed documents and a top-level null are parse failures.
// Any other non-object document is inspected as a record without fields.
func (validator *RecordValidator) Validate(articlePath string) ValidationResult {
	contents, readError := validator.fileSystem.ReadFile(articlePath)
	if readError != nil {
		return ValidationResult{ParseFailed: true}
	}

	var document any
	if decodeError := json.Unmarshal(contents, &document); decodeError != nil {
		return ValidationResult{ParseFailed: true}
	}

	if document == nil {
		return ValidationResult{ParseFailed: true}
	}

	record, isObject := document.(map[string]any)
	if !isObject {
		record = map[string]any{}
	}

	return ValidationResult{Issues: validator.inspectRecord(record)}
}

func (validator *RecordValidator) inspectRecord(record map[string]any) []string {
	issues := []string{}

	imageValue := record[imageFieldNameConstant]
	if isTruthy(imageValue) {
		reference := referenceText(imageValue)
		if !validator.imageExists(reference) {
			issues = append(issues, fmt.Sprintf(missingImageIssueTemplateConstant, reference))
		}
	}

	galleryValue := record[imageGalleryFieldNameConstant]
	if galleryEntries, isArray := galleryValue.([]any); isArray {
		for _, galleryEntry := range galleryEntries {
			reference := referenceText(galleryEntry)
			if !validator.imageExists(reference) {
				issues = append(issues, fmt.Sprintf(missingGalleryIssueTemplateConstant, reference))
			}
		}
	}

	// A present but non-array gallery still counts as a field here.
	if !isTruthy(imageValue) && !isTruthy(galleryValue) {
		issues = append(issues, missingImageFieldsIssueConstant)
	}

	return issues
}

// imageExists reports whether reference names a non-empty regular file under the image root.
// Every stat failure counts as missing.
func (validator *RecordValidator) imageExists(reference string) bool {
	fileInfo, statError := validator.fileSystem.Stat(filepath.Join(validator.imageRoot, reference))
	if statError != nil {
		return false
	}
	return fileInfo.Mode().IsRegular() && fileInfo.Size() > 0
}

func isTruthy(value any) bool {
	switch typedValue := value.(type) {
	case nil:
		return false
	case bool:
		return typedValue
	case float64:
		return typedValue != 0
	case string:
		return len(typedValue) > 0
	default:
		return true
	}
}

// referenceText renders a field value as the text used both for path resolution and issue messages.
func referenceText(value any) string {
	if text, isString := value.(string); isString {
		return text
	}
	encoded, encodeError := json.Marshal(value)
	if encodeError != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}
