// Package fileutils holds small filesystem helpers shared by the commands.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// receiptExtensions are the upload formats the OCR engine accepts.
var receiptExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".pdf":  true,
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsReceiptFile reports whether the file extension is a supported receipt
// format.
func IsReceiptFile(path string) bool {
	return receiptExtensions[strings.ToLower(filepath.Ext(path))]
}

// ValidateReceiptFile checks that path names an existing file in a supported
// format.
func ValidateReceiptFile(path string) error {
	if !FileExists(path) {
		return fmt.Errorf("file not found: %s", path)
	}
	if !IsReceiptFile(path) {
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	return nil
}

// ListReceiptFiles returns the supported receipt files directly inside dir,
// sorted by name. Subdirectories are not descended into.
func ListReceiptFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if IsReceiptFile(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}
