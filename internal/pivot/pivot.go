package pivot

import (
	"fmt"

	"dictpivot/internal/ordered"
)

// Entry maps language identifiers to the translated value of one key.
type Entry = ordered.Map[any]

// Dictionary is the key-major result of a pivot.
type Dictionary = ordered.Map[*Entry]

// Pivot classifies doc and converts it to key-major form. A non-empty
// languageOverride becomes the language set verbatim, languages without a
// detected pack included; otherwise the detected packs are used in
// first-seen order.
func Pivot(doc any, languageOverride []string) (*Dictionary, error) {
	raw, err := Classify(doc)
	if err != nil {
		return nil, err
	}
	return raw.Pivot(languageOverride)
}

// LanguageSet resolves the output languages for languageOverride.
func (r *RawDictionary) LanguageSet(languageOverride []string) []string {
	if len(languageOverride) == 0 {
		return r.Languages()
	}
	return distinct(languageOverride)
}

// Pivot converts a classified dictionary to key-major form.
func (r *RawDictionary) Pivot(languageOverride []string) (*Dictionary, error) {
	if len(r.packs) == 0 {
		return nil, fmt.Errorf("%w: no top-level value is an object", ErrNoLanguagePacks)
	}

	languages := r.LanguageSet(languageOverride)
	packs := make([]*LanguagePack, len(languages))
	for i, lang := range languages {
		packs[i], _ = r.Pack(lang)
	}

	keys := r.KeyUniverse()
	out := ordered.New[*Entry](len(keys))
	for _, key := range keys {
		entry := ordered.New[any](len(languages))
		for i, lang := range languages {
			var value any = ""
			if v, ok := packs[i].Get(key); ok {
				value = v
			}
			entry.Set(lang, value)
		}
		out.Set(key, entry)
	}
	return out, nil
}

// Unpivot converts a key-major document back to language-major form.
// Top-level entries whose value is not an object are skipped. Languages
// default to the union of entry languages in first-seen order.
func Unpivot(doc any, languageOverride []string) (*ordered.Map[*LanguagePack], error) {
	root, ok := doc.(*ordered.Map[any])
	if !ok || root == nil {
		return nil, fmt.Errorf("%w: top-level value is %s", ErrInvalidInputShape, describeKind(doc))
	}

	entries := ordered.New[*Entry](root.Len())
	var detected []string
	seen := make(map[string]struct{})
	for key, value := range root.All() {
		entry, ok := value.(*ordered.Map[any])
		if !ok || entry == nil {
			continue
		}
		entries.Set(key, entry)
		for lang := range entry.All() {
			if _, dup := seen[lang]; dup {
				continue
			}
			seen[lang] = struct{}{}
			detected = append(detected, lang)
		}
	}
	if entries.Len() == 0 {
		return nil, fmt.Errorf("%w: no top-level value is an object", ErrNoEntries)
	}

	languages := detected
	if len(languageOverride) > 0 {
		languages = distinct(languageOverride)
	}

	out := ordered.New[*LanguagePack](len(languages))
	for _, lang := range languages {
		pack := ordered.New[any](entries.Len())
		for key, entry := range entries.All() {
			var value any = ""
			if v, ok := entry.Get(lang); ok {
				value = v
			}
			pack.Set(key, value)
		}
		out.Set(lang, pack)
	}
	return out, nil
}

func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
