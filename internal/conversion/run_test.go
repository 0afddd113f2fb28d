package conversion_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dictpivot/internal/conversion"
	"dictpivot/internal/document"
	"dictpivot/internal/logging"
	"dictpivot/internal/pivot"
	"dictpivot/internal/testsupport"
)

const sampleDictionary = `{"en":{"hello":"Hello","bye":"Bye"},"ja":{"hello":"こんにちは"}}`

func TestRunPivotsFileToFile(t *testing.T) {
	input := testsupport.WriteFixture(t, "in.json", sampleDictionary)
	output := filepath.Join(t.TempDir(), "out.json")

	result, err := conversion.Run(context.Background(), conversion.Request{
		InputPath:  input,
		OutputPath: output,
		Encode:     document.EncodeOptions{Indent: 2, TrailingNewline: true},
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := `{
  "hello": {
    "en": "Hello",
    "ja": "こんにちは"
  },
  "bye": {
    "en": "Bye",
    "ja": ""
  }
}
`
	if got := testsupport.ReadFile(t, output); got != want {
		t.Fatalf("output mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	if diff := cmp.Diff([]string{"en", "ja"}, result.Languages); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
	if result.Keys != 2 || result.Bytes != len(want) || result.OutputPath != output {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Format != document.FormatJSON {
		t.Fatalf("expected json output, got %q", result.Format)
	}
}

func TestRunStdinToStdoutSorted(t *testing.T) {
	var stdout bytes.Buffer
	result, err := conversion.Run(context.Background(), conversion.Request{
		InputPath: "-",
		Languages: []string{"ja", "en"},
		Sort:      true,
		Encode:    document.EncodeOptions{TrailingNewline: true},
		Stdin:     strings.NewReader(sampleDictionary),
		Stdout:    &stdout,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := `{"bye":{"en":"Bye","ja":""},"hello":{"en":"Hello","ja":"こんにちは"}}` + "\n"
	if got := stdout.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if diff := cmp.Diff([]string{"en", "ja"}, result.Languages); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
	if result.OutputPath != "-" {
		t.Fatalf("expected stdout marker, got %q", result.OutputPath)
	}
}

func TestRunLanguageOverrideOrder(t *testing.T) {
	var stdout bytes.Buffer
	_, err := conversion.Run(context.Background(), conversion.Request{
		Languages: []string{"ja", "ko"},
		Stdin:     strings.NewReader(sampleDictionary),
		Stdout:    &stdout,
	}, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := `{"hello":{"ja":"こんにちは","ko":""},"bye":{"ja":"","ko":""}}`
	if got := stdout.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunYAMLOutputFromExtension(t *testing.T) {
	input := testsupport.WriteFixture(t, "in.json", `{"en":{"hi":"Hi"},"fr":{"hi":"Salut"}}`)
	output := filepath.Join(t.TempDir(), "out.yaml")

	result, err := conversion.Run(context.Background(), conversion.Request{
		InputPath:  input,
		OutputPath: output,
		Encode:     document.EncodeOptions{Indent: 2, TrailingNewline: true},
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Format != document.FormatYAML {
		t.Fatalf("expected yaml output, got %q", result.Format)
	}
	want := "hi:\n  en: Hi\n  fr: Salut\n"
	if got := testsupport.ReadFile(t, output); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunYAMLInputJSONOutput(t *testing.T) {
	input := testsupport.WriteFixture(t, "in.yml", "en:\n  hi: Hi\nde:\n  hi: Hallo\n")
	var stdout bytes.Buffer

	_, err := conversion.Run(context.Background(), conversion.Request{
		InputPath:    input,
		OutputFormat: document.FormatJSON,
		Stdout:       &stdout,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got, want := stdout.String(), `{"hi":{"en":"Hi","de":"Hallo"}}`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunUnpivot(t *testing.T) {
	var stdout bytes.Buffer
	result, err := conversion.Run(context.Background(), conversion.Request{
		Direction: conversion.DirectionUnpivot,
		Stdin:     strings.NewReader(`{"hello":{"en":"Hello","ja":"こんにちは"},"bye":{"en":"Bye"}}`),
		Stdout:    &stdout,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := `{"en":{"hello":"Hello","bye":"Bye"},"ja":{"hello":"こんにちは","bye":""}}`
	if got := stdout.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if result.Keys != 2 || len(result.Languages) != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		req   conversion.Request
		want  error
	}{
		{name: "syntax", input: `{"en":`, want: document.ErrSyntax},
		{name: "array root", input: `[1,2]`, want: pivot.ErrInvalidInputShape},
		{name: "no packs", input: `{"en":"x"}`, want: pivot.ErrNoLanguagePacks},
		{
			name:  "unpivot without entries",
			input: `{"a":1}`,
			req:   conversion.Request{Direction: conversion.DirectionUnpivot},
			want:  pivot.ErrNoEntries,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testsupport.WriteFixture(t, "in.json", tt.input)
			output := filepath.Join(t.TempDir(), "out.json")
			req := tt.req
			req.InputPath = input
			req.OutputPath = output

			_, err := conversion.Run(context.Background(), req, logging.NewNop())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
				t.Fatalf("output should not exist after failure, stat err=%v", statErr)
			}
		})
	}
}

func TestRunRejectsBadRequest(t *testing.T) {
	stdin := strings.NewReader(sampleDictionary)
	var stdout bytes.Buffer

	if _, err := conversion.Run(context.Background(), conversion.Request{
		Direction: "sideways",
		Stdin:     stdin,
		Stdout:    &stdout,
	}, nil); err == nil {
		t.Fatal("expected error for unknown direction")
	}
	if _, err := conversion.Run(context.Background(), conversion.Request{
		Sort:   true,
		Locale: "not a locale!",
		Stdin:  stdin,
		Stdout: &stdout,
	}, nil); err == nil {
		t.Fatal("expected error for invalid locale")
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %q", stdout.String())
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	_, err := conversion.Run(ctx, conversion.Request{
		Stdin:  strings.NewReader(sampleDictionary),
		Stdout: &stdout,
	}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("cancelled run wrote output: %q", stdout.String())
	}
}

func TestRunLogsCorrelationID(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &logs})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-123")

	var stdout bytes.Buffer
	if _, err := conversion.Run(ctx, conversion.Request{
		Stdin:  strings.NewReader(sampleDictionary),
		Stdout: &stdout,
	}, logger); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	text := logs.String()
	for _, want := range []string{`"correlation_id":"run-123"`, `"msg":"conversion finished"`, `"component":"conversion"`, `"keys":2`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in logs:\n%s", want, text)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for input, want := range map[string]conversion.Direction{
		"":         conversion.DirectionPivot,
		"pivot":    conversion.DirectionPivot,
		" Unpivot": conversion.DirectionUnpivot,
	} {
		got, err := conversion.ParseDirection(input)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %q, %v", input, got, err)
		}
	}
}

func TestRunLogsFailure(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "error", Format: "json", Writer: &logs})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	var stdout bytes.Buffer
	_, err = conversion.Run(context.Background(), conversion.Request{
		Stdin:  strings.NewReader(`{"en":"flat"}`),
		Stdout: &stdout,
	}, logger)
	if !errors.Is(err, pivot.ErrNoLanguagePacks) {
		t.Fatalf("expected ErrNoLanguagePacks, got %v", err)
	}

	text := logs.String()
	for _, want := range []string{`"msg":"conversion failed"`, `"event_type":"conversion_failed"`, `"error":"pivot: no language packs found`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in logs:\n%s", want, text)
		}
	}
}
