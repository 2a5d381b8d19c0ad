package imageaudit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrReportWriteFailed reports that the audit report could not be persisted.
var ErrReportWriteFailed = errors.New("unable to write image audit report")

// ReportWriter persists audit reports as indented JSON.
type ReportWriter struct {
	fileSystem FileSystem
}

// NewReportWriter constructs a ReportWriter backed by fileSystem.
func NewReportWriter(fileSystem FileSystem) *ReportWriter {
	return &ReportWriter{fileSystem: fileSystem}
}

// Encode renders the report with two-space indentation and no trailing newline.
// HTML characters and the U+2028/U+2029 separators are written unescaped.
// A nil report encodes as an empty array.
func (writer *ReportWriter) Encode(report []AuditEntry) ([]byte, error) {
	if report == nil {
		report = []AuditEntry{}
	}

	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", reportIndentConstant)
	if encodeError := encoder.Encode(report); encodeError != nil {
		return nil, fmt.Errorf(reportEncodeErrorTemplateConstant, ErrReportWriteFailed, encodeError)
	}

	return unescapeLineSeparators(bytes.TrimSuffix(buffer.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators restores the U+2028 and U+2029 runes that encoding/json always escapes.
// Every backslash in encoder output opens a two-byte or \uXXXX escape, so escapes are skipped pairwise.
func unescapeLineSeparators(encoded []byte) []byte {
	if !bytes.Contains(encoded, []byte(lineSeparatorEscapePrefixConstant)) {
		return encoded
	}

	restored := make([]byte, 0, len(encoded))
	for index := 0; index < len(encoded); index++ {
		if encoded[index] != '\\' || index+1 >= len(encoded) {
			restored = append(restored, encoded[index])
			continue
		}
		escape := encoded[index:min(index+len(lineSeparatorEscapeConstant), len(encoded))]
		switch string(escape) {
		case lineSeparatorEscapeConstant:
			restored = append(restored, lineSeparatorConstant...)
			index += len(lineSeparatorEscapeConstant) - 1
		case paragraphSeparatorEscapeConstant:
			restored = append(restored, paragraphSeparatorConstant...)
			index += len(paragraphSeparatorEscapeConstant) - 1
		default:
			restored = append(restored, encoded[index], encoded[index+1])
			index++
		}
	}
	return restored
}

// Write encodes the report and overwrites outputPath with it.
func (writer *ReportWriter) Write(outputPath string, report []AuditEntry) error {
	encoded, encodeError := writer.Encode(report)
	if encodeError != nil {
		return encodeError
	}

	if writeError := writer.fileSystem.WriteFile(outputPath, encoded, reportFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, ErrReportWriteFailed, outputPath, writeError)
	}
	return nil
}
