package pivot

import "errors"

var (
	// ErrInvalidInputShape indicates the decoded input is not an object.
	ErrInvalidInputShape = errors.New("input is not an object")
	// ErrNoLanguagePacks indicates no top-level value is an object.
	ErrNoLanguagePacks = errors.New("no language packs found")
	// ErrNoEntries indicates a key-major document has no object-valued entries.
	ErrNoEntries = errors.New("no dictionary entries found")
)
