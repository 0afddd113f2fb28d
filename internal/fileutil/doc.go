// Package fileutil reads input documents and writes output documents.
//
// Writes go through a temp file and rename under an exclusive flock so a
// failed or concurrent conversion never leaves a half-written dictionary.
package fileutil
