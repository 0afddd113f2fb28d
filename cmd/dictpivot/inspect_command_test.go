package main

import (
	"encoding/json"
	"testing"

	"dictpivot/internal/pivot"
	"dictpivot/internal/testsupport"
)

func TestInspectTable(t *testing.T) {
	input := testsupport.WriteFixture(t, "locales.json", sampleDictionary)

	out, _, err := runCLI(t, "inspect", "--langs", "en,ja,ko", input)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Japanese")
	requireContains(t, out, "Korean")
	requireContains(t, out, "50.0%")
	requireContains(t, out, "== Coverage ==")
	requireContains(t, out, "[OK] complete")
	requireContains(t, out, "[WARN] 1 missing")
	requireContains(t, out, "[ERROR] no language pack")
	requireContains(t, out, "[WARN] version")
}

func TestInspectJSON(t *testing.T) {
	input := testsupport.WriteFixture(t, "locales.json", sampleDictionary)

	out, _, err := runCLI(t, "inspect", "--json", input)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var summary pivot.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode inspect json: %v\n%s", err, out)
	}
	if summary.TotalKeys != 2 || len(summary.Languages) != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if ja := summary.Languages[1]; ja.Language != "ja" || ja.Keys != 1 || ja.Missing != 1 || !ja.Detected {
		t.Fatalf("unexpected ja stats: %+v", ja)
	}
	if len(summary.Ignored) != 1 || summary.Ignored[0] != "version" {
		t.Fatalf("unexpected ignored entries: %v", summary.Ignored)
	}
}

func TestInspectRejectsNonObject(t *testing.T) {
	input := testsupport.WriteFixture(t, "list.json", `["en"]`)
	if _, _, err := runCLI(t, "inspect", input); err == nil {
		t.Fatal("expected error for non-object input")
	}
}
