package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a serialized document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrSyntax marks input that could not be parsed in the requested format.
	ErrSyntax = errors.New("document syntax error")
	// ErrUnsupportedFormat marks a format name this package does not handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ParseFormat validates a user-supplied format name. Empty input yields an
// empty Format so callers can fall back to detection.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
	}
}

// DetectFormat picks a format from the path extension, then fallback, then JSON.
func DetectFormat(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(path))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	if fallback != "" {
		return fallback
	}
	return FormatJSON
}

// EncodeOptions controls presentation of encoded output.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. Zero produces compact
	// JSON; YAML always indents by at least two spaces.
	Indent          int
	TrailingNewline bool
}

// Decode parses data in the given format into an ordered tree.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON, "":
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode serializes v in the given format.
func Encode(v any, format Format, opts EncodeOptions) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON, "":
		out, err = encodeJSON(v, opts.Indent)
	case FormatYAML:
		out, err = encodeYAML(v, opts.Indent)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	out = trimTrailingNewlines(out)
	if opts.TrailingNewline {
		out = append(out, '\n')
	}
	return out, nil
}

func trimTrailingNewlines(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
