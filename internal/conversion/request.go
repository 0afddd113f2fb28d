package conversion

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dictpivot/internal/document"
)

// Direction selects which way a dictionary is reshaped.
type Direction string

const (
	// DirectionPivot turns {lang:{key:value}} into {key:{lang:value}}.
	DirectionPivot Direction = "pivot"
	// DirectionUnpivot turns {key:{lang:value}} into {lang:{key:value}}.
	DirectionUnpivot Direction = "unpivot"
)

const defaultFileMode os.FileMode = 0o644

// ParseDirection validates a direction name. Empty input selects pivot.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(value))) {
	case "", DirectionPivot:
		return DirectionPivot, nil
	case DirectionUnpivot:
		return DirectionUnpivot, nil
	default:
		return "", fmt.Errorf("unknown direction %q", value)
	}
}

// Request describes one conversion.
type Request struct {
	// InputPath is the source document; "-" or empty reads Stdin.
	InputPath string
	// OutputPath is the destination; "-" or empty writes Stdout.
	OutputPath string

	// InputFormat and OutputFormat override extension detection. Output
	// falls back to the input format when neither is known.
	InputFormat  document.Format
	OutputFormat document.Format

	Languages []string
	Sort      bool
	Locale    string
	Direction Direction
	Encode    document.EncodeOptions
	FileMode  os.FileMode

	Stdin  io.Reader
	Stdout io.Writer
}

// Result summarizes a finished conversion.
type Result struct {
	Languages  []string
	Keys       int
	Bytes      int
	OutputPath string
	Format     document.Format
}

func (r Request) inputFormat() document.Format {
	if r.InputFormat != "" {
		return r.InputFormat
	}
	return document.DetectFormat(r.InputPath, document.FormatJSON)
}

func (r Request) outputFormat(input document.Format) document.Format {
	if r.OutputFormat != "" {
		return r.OutputFormat
	}
	return document.DetectFormat(r.OutputPath, input)
}

func (r Request) fileMode() os.FileMode {
	if r.FileMode == 0 {
		return defaultFileMode
	}
	return r.FileMode
}
