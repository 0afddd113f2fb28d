// Package pivot restructures language-major translation dictionaries
// ({lang: {key: value}}) into key-major ones ({key: {lang: value}}).
//
// Classify performs shape detection: every top-level entry whose value is an
// object is a language pack, everything else is kept aside and ignored.
// Pivot builds one entry per key found in any detected pack and fills every
// language of the selected set, defaulting missing translations to "". The
// transformation is pure and all-or-nothing. Unpivot is the reverse direction.
package pivot
