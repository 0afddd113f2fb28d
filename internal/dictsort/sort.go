package dictsort

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"dictpivot/internal/ordered"
)

type settings struct {
	tag language.Tag
}

// Option configures sorting.
type Option func(*settings)

// WithLocale selects the collation locale. The default is the root locale.
func WithLocale(tag language.Tag) Option {
	return func(s *settings) {
		s.tag = tag
	}
}

func newCollator(opts []Option) *collate.Collator {
	s := settings{tag: language.Und}
	for _, opt := range opts {
		opt(&s)
	}
	return collate.New(s.tag)
}

// Sort returns a new map with keys in collation order. Values that are
// objects are replaced by copies with their own keys sorted. The input is not
// modified.
func Sort[V any](dict *ordered.Map[V], opts ...Option) *ordered.Map[V] {
	c := newCollator(opts)
	out := ordered.New[V](dict.Len())
	for _, key := range sortedKeys(c, dict.Keys()) {
		value, _ := dict.Get(key)
		if inner, ok := sortInner(c, any(value)).(V); ok {
			value = inner
		}
		out.Set(key, value)
	}
	return out
}

// SortDocument sorts a decoded document when its root is an object and
// returns any other value unchanged.
func SortDocument(doc any, opts ...Option) any {
	root, ok := doc.(*ordered.Map[any])
	if !ok || root == nil {
		return doc
	}
	return Sort(root, opts...)
}

// Keys returns keys sorted in collation order without modifying the input.
func Keys(keys []string, opts ...Option) []string {
	return sortedKeys(newCollator(opts), keys)
}

func sortInner(c *collate.Collator, value any) any {
	switch inner := value.(type) {
	case *ordered.Map[any]:
		return reorder(c, inner)
	case *ordered.Map[string]:
		return reorder(c, inner)
	default:
		return value
	}
}

func reorder[V any](c *collate.Collator, m *ordered.Map[V]) *ordered.Map[V] {
	if m == nil {
		return nil
	}
	out := ordered.New[V](m.Len())
	for _, key := range sortedKeys(c, m.Keys()) {
		value, _ := m.Get(key)
		out.Set(key, value)
	}
	return out
}

// sortedKeys falls back to byte order when the collator reports equality so
// distinct keys always have a fixed relative order.
func sortedKeys(c *collate.Collator, keys []string) []string {
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	})
	return sorted
}
