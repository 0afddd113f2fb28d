package dictsort_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"dictpivot/internal/dictsort"
	"dictpivot/internal/document"
	"dictpivot/internal/ordered"
	"dictpivot/internal/pivot"
)

func decodeObject(t *testing.T, input string) *ordered.Map[any] {
	t.Helper()
	doc, err := document.Decode([]byte(input), document.FormatJSON)
	if err != nil {
		t.Fatalf("decode %q: %v", input, err)
	}
	root, ok := doc.(*ordered.Map[any])
	if !ok {
		t.Fatalf("expected object, got %T", doc)
	}
	return root
}

func TestSortTopLevelOrder(t *testing.T) {
	root := decodeObject(t, `{"b": {"en": "B"}, "a": {"en": "A"}}`)

	sorted := dictsort.Sort(root)
	if diff := cmp.Diff([]string{"a", "b"}, sorted.Keys()); diff != "" {
		t.Fatalf("top-level order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a"}, root.Keys()); diff != "" {
		t.Fatalf("input must not be reordered (-want +got):\n%s", diff)
	}
}

func TestSortPivotedDictionary(t *testing.T) {
	dict, err := pivot.Pivot(decodeObject(t, `{"ko": {"z": "지", "m": "엠"}, "en": {"a": "A"}}`), nil)
	if err != nil {
		t.Fatalf("Pivot returned error: %v", err)
	}

	sorted := dictsort.Sort(dict)
	if diff := cmp.Diff([]string{"a", "m", "z"}, sorted.Keys()); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
	for key, entry := range sorted.All() {
		if diff := cmp.Diff([]string{"en", "ko"}, entry.Keys()); diff != "" {
			t.Fatalf("entry %q language order (-want +got):\n%s", key, diff)
		}
	}
	original, _ := dict.Get("z")
	if diff := cmp.Diff([]string{"ko", "en"}, original.Keys()); diff != "" {
		t.Fatalf("original entries must keep their order (-want +got):\n%s", diff)
	}
}

func TestSortUsesCollationNotByteOrder(t *testing.T) {
	got := dictsort.Keys([]string{"b", "C", "a", "é", "f", "e"})
	if diff := cmp.Diff([]string{"a", "b", "C", "e", "é", "f"}, got); diff != "" {
		t.Fatalf("collation order (-want +got):\n%s", diff)
	}
}

func TestSortWithLocale(t *testing.T) {
	keys := []string{"ö", "z", "o"}
	if diff := cmp.Diff([]string{"o", "ö", "z"}, dictsort.Keys(keys)); diff != "" {
		t.Fatalf("root order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"o", "z", "ö"}, dictsort.Keys(keys, dictsort.WithLocale(language.Swedish))); diff != "" {
		t.Fatalf("swedish order (-want +got):\n%s", diff)
	}
}

func TestSortIdempotentAndValuePreserving(t *testing.T) {
	root := decodeObject(t, `{"Zeta": {"y": 1, "x": [1, 2]}, "alpha": "plain", "Beta": {"b": {"nested": {"z": 1, "a": 2}}, "a": null}}`)

	once := dictsort.Sort(root)
	twice := dictsort.Sort(once)
	if diff := cmp.Diff(once.Keys(), twice.Keys()); diff != "" {
		t.Fatalf("sort not idempotent (-once +twice):\n%s", diff)
	}

	encode := func(v any) string {
		out, err := document.Encode(v, document.FormatJSON, document.EncodeOptions{})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return string(out)
	}
	want := `{"alpha":"plain","Beta":{"a":null,"b":{"nested":{"z":1,"a":2}}},"Zeta":{"x":[1,2],"y":1}}`
	if got := encode(once); got != want {
		t.Fatalf("unexpected sorted output:\n got %s\nwant %s", got, want)
	}
	if len(once.Keys()) != len(root.Keys()) {
		t.Fatalf("key set changed: %v vs %v", once.Keys(), root.Keys())
	}
}

func TestSortDocumentLeavesNonObjects(t *testing.T) {
	items := []any{"b", "a"}
	got := dictsort.SortDocument(items)
	if diff := cmp.Diff(items, got); diff != "" {
		t.Fatalf("non-object should be returned unchanged (-want +got):\n%s", diff)
	}
}
