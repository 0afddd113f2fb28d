package pivot

// LanguageStats describes how one language of the output set is covered.
type LanguageStats struct {
	Language string `json:"language"`
	Detected bool   `json:"detected"`
	Keys     int    `json:"keys"`
	Missing  int    `json:"missing"`
}

// Coverage returns the share of the key universe translated, in [0, 1].
func (s LanguageStats) Coverage(total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(s.Keys) / float64(total)
}

// Summary reports the shape of a classified dictionary.
type Summary struct {
	TotalKeys int             `json:"total_keys"`
	Languages []LanguageStats `json:"languages"`
	Ignored   []string        `json:"ignored,omitempty"`
}

// Describe computes per-language coverage for the language set that Pivot
// would use with languageOverride.
func (r *RawDictionary) Describe(languageOverride []string) Summary {
	universe := r.KeyUniverse()
	summary := Summary{
		TotalKeys: len(universe),
		Ignored:   r.Ignored(),
	}
	for _, lang := range r.LanguageSet(languageOverride) {
		stats := LanguageStats{Language: lang}
		if pack, ok := r.Pack(lang); ok {
			stats.Detected = true
			stats.Keys = pack.Len()
		}
		stats.Missing = len(universe) - stats.Keys
		summary.Languages = append(summary.Languages, stats)
	}
	return summary
}
