package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/charmbracelet/log"
)

// FileFormat represents the vocabulary source formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatJSON               // word -> [synset ids] JSON object
	FormatMsgpack            // same mapping, msgpack encoded
	FormatText               // "word count" lines
)

// FormatInfo contains metadata about a vocabulary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Word-Synset Mapping",
		Extensions:  []string{".json"},
		MinSize:     2, // "{}"
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Word-Synset Mapping",
		Extensions:  []string{".msgpack", ".mpk"},
		MinSize:     1, // empty fixmap
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word Counts",
		Extensions:  []string{".txt"},
		MinSize:     0,
	},
}

// synsetSourceOrder is the lookup order for a language's word-synset source.
var synsetSourceOrder = []FileFormat{FormatMsgpack, FormatJSON}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			log.Debugf("%s validated as %s", filename, formatInfo.Description)
			return nil
		}
	}
	return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
		filename, ext, formatInfo.Description, formatInfo.Extensions)
}

// DetectFileFormat detects the format of a file from its extension
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// SynsetSourcePaths returns the candidate word-synset source paths for code, in lookup order:
// <dir>/<code>_data.msgpack, <dir>/<code>_data.json.
func SynsetSourcePaths(dir string, code lang.Code) []string {
	var paths []string
	for _, format := range synsetSourceOrder {
		for _, ext := range supportedFormats[format].Extensions {
			paths = append(paths, filepath.Join(dir, code.String()+"_data"+ext))
		}
	}
	return paths
}

// FrequencySourcePath returns <dir>/<code>_vocab.txt.
func FrequencySourcePath(dir string, code lang.Code) string {
	return filepath.Join(dir, code.String()+"_vocab.txt")
}
