package edgelist

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an on-disk edge list encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format. The empty string and
// "auto" are not accepted here; use FormatForPath for detection.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatForPath picks YAML for .yaml/.yml files and text for everything else.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}
