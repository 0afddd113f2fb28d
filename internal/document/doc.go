// Package document decodes and encodes translation documents while keeping
// key order intact.
//
// Decoded trees use *ordered.Map[any] for objects, []any for arrays,
// json.Number for numbers (the textual form survives a JSON round trip),
// string, bool and nil. Encoders accept any ordered.Iterable, so typed maps
// such as the pivoted dictionary serialize without conversion.
package document
