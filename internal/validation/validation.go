// Package validation screens uploads before they reach the extraction
// pipeline.
package validation

import (
	"path/filepath"
	"strings"

	"fjacquet/saldo-xlsx/internal/parsererror"
)

// ValidateUpload checks that an uploaded file looks like a PDF the service
// can process. It rejects non-.pdf extensions, empty files and files larger
// than maxBytes. A rejected upload still produces a read-error row in the
// report; validation never aborts the batch.
func ValidateUpload(name string, size, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".pdf" {
		return &parsererror.InvalidFormatError{
			File: name,
			Msg:  "expected a .pdf file",
		}
	}

	if size == 0 {
		return &parsererror.ValidationError{
			File:   name,
			Reason: "file is empty",
		}
	}

	if maxBytes > 0 && size > maxBytes {
		return &parsererror.ValidationError{
			File:   name,
			Reason: "file exceeds the upload size limit",
		}
	}

	return nil
}
