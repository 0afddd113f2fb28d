package pivot

import (
	"encoding/json"
	"fmt"

	"dictpivot/internal/ordered"
)

// LanguagePack maps translation keys to values for one language. Values are
// usually strings but are carried through untouched.
type LanguagePack = ordered.Map[any]

// RawEntry is one top-level entry of a decoded dictionary. Exactly one of
// Pack or Other is meaningful: Pack is set when the value is an object.
type RawEntry struct {
	Pack  *LanguagePack
	Other any
}

// IsPack reports whether the entry was detected as a language pack.
func (e RawEntry) IsPack() bool { return e.Pack != nil }

// RawDictionary is a classified language-major document.
type RawDictionary struct {
	entries *ordered.Map[RawEntry]
	packs   []string
}

// Classify checks that doc is an object and tags each top-level entry as a
// language pack or an ignored value. It does not require any pack to exist.
func Classify(doc any) (*RawDictionary, error) {
	root, ok := doc.(*ordered.Map[any])
	if !ok || root == nil {
		return nil, fmt.Errorf("%w: top-level value is %s", ErrInvalidInputShape, describeKind(doc))
	}
	raw := &RawDictionary{entries: ordered.New[RawEntry](root.Len())}
	for name, value := range root.All() {
		if pack, ok := value.(*ordered.Map[any]); ok && pack != nil {
			raw.entries.Set(name, RawEntry{Pack: pack})
			raw.packs = append(raw.packs, name)
			continue
		}
		raw.entries.Set(name, RawEntry{Other: value})
	}
	return raw, nil
}

// Languages returns detected pack names in first-seen order.
func (r *RawDictionary) Languages() []string {
	return append([]string(nil), r.packs...)
}

// Pack returns the detected pack for lang.
func (r *RawDictionary) Pack(lang string) (*LanguagePack, bool) {
	entry, ok := r.entries.Get(lang)
	if !ok || !entry.IsPack() {
		return nil, false
	}
	return entry.Pack, true
}

// Ignored returns the names of top-level entries that are not language packs.
func (r *RawDictionary) Ignored() []string {
	var names []string
	for name, entry := range r.entries.All() {
		if !entry.IsPack() {
			names = append(names, name)
		}
	}
	return names
}

// KeyUniverse returns the union of keys across all detected packs in
// first-seen order, regardless of which languages end up in the output.
func (r *RawDictionary) KeyUniverse() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, lang := range r.packs {
		pack, _ := r.Pack(lang)
		for key := range pack.All() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

func describeKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, int, int64, float64:
		return "a number"
	case []any:
		return "an array"
	case *ordered.Map[any]:
		return "a null object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
