/*
Package csvwriter serializes extracted records to a CSV file.
*/
package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vigo/cve2csv/internal/cve"
)

// Header is the CSV header row.
var Header = []string{"id", "description"}

// Write serializes records to path in extraction order, header first. The
// file is written to a temporary location in the destination directory and
// renamed into place, so a failed run never leaves partial output behind.
// An existing file at path is overwritten.
func Write(path string, records cve.Records) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cve2csv-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	w := csv.NewWriter(tmp)

	if err = w.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, record := range records {
		if err = w.Write([]string{record.ID, record.Description}); err != nil {
			return fmt.Errorf("write record %q: %w", record.ID, err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	// os.CreateTemp creates the file 0600; the output is a regular artifact.
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}

	return nil
}
