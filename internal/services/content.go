// Package services implements the application logic behind each screen:
// loading, validation, upload-then-insert sequencing and the error
// degradation rules of the public pages.
package services

import (
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// detectContentType sniffs the leading bytes of r and rewinds it so the full
// stream can still be uploaded.
func detectContentType(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("could not read upload: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("could not rewind upload: %w", err)
	}
	return mt.String(), nil
}
