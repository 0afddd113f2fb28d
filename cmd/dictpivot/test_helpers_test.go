package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"dictpivot/internal/testsupport"
)

const sampleDictionary = `{"en":{"hello":"Hello","bye":"Bye"},"ja":{"hello":"こんにちは"},"version":3}`

// runCLI executes the command tree in an isolated HOME and working directory.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, nil, args...)
}

func runCLIWithInput(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	testsupport.IsolateEnv(t)

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
