package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents the lexicon file formats teny reads.
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatJSON                // JSON table
	FormatYAML                // YAML table
	FormatSnapshot            // compiled bbolt snapshot
)

// FormatInfo contains metadata about a lexicon file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

func formatInfo(f FileFormat) (FormatInfo, bool) {
	switch f {
	case FormatJSON:
		return FormatInfo{f, "JSON table", []string{".json"}, 2}, true
	case FormatYAML:
		return FormatInfo{f, "YAML table", []string{".yaml", ".yml"}, 1}, true
	case FormatSnapshot:
		return FormatInfo{f, "bbolt lexicon snapshot", []string{".db", ".bolt"}, 1}, true
	}
	return FormatInfo{}, false
}

func (f FileFormat) String() string {
	if info, ok := formatInfo(f); ok {
		return info.Description
	}
	return "unknown"
}

// DetectFormat guesses the format of a file from its extension.
func DetectFormat(path string) FileFormat {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []FileFormat{FormatJSON, FormatYAML, FormatSnapshot} {
		info, _ := formatInfo(f)
		for _, e := range info.Extensions {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}

// ValidateFileFormat checks that a file exists, has a known extension and is
// large enough to hold anything.
func ValidateFileFormat(path string) (FileFormat, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if stat.IsDir() {
		return FormatUnknown, fmt.Errorf("%s is a directory", path)
	}
	format := DetectFormat(path)
	info, ok := formatInfo(format)
	if !ok {
		return FormatUnknown, fmt.Errorf("file %s has unsupported extension %q", path, filepath.Ext(path))
	}
	if stat.Size() < info.MinSize {
		return format, fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			path, stat.Size(), info.Description, info.MinSize)
	}
	return format, nil
}

// tableFile returns the first existing file for table in dir, trying each
// table extension in turn.
func tableFile(dir string, table Table) (string, bool) {
	exts := []string{".json", ".yaml", ".yml"}
	if table == TableGazetteers {
		exts = []string{".yaml", ".yml", ".json"}
	}
	for _, ext := range exts {
		path := filepath.Join(dir, string(table)+ext)
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			return path, true
		}
	}
	return "", false
}

// MarkerFiles lists file names that identify a lexicon data directory.
func MarkerFiles() []string {
	var out []string
	for _, t := range Tables() {
		for _, ext := range []string{".json", ".yaml", ".yml"} {
			out = append(out, string(t)+ext)
		}
	}
	return append(out, SnapshotFileName)
}
