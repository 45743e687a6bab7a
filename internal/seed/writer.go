package seed

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteFile writes records as a JSON array to path, gzip-compressed when path
// ends in .gz. The result can be read back by the file and S3 loaders.
func WriteFile(path string, records []Record) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close seed file %s: %w", path, closeErr)
		}
	}()

	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer func() {
			if closeErr := gzipWriter.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to flush gzip stream for %s: %w", path, closeErr)
			}
		}()
		w = gzipWriter
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode seed file %s: %w", path, err)
	}

	return nil
}
