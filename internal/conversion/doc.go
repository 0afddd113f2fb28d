// Package conversion runs one end-to-end dictionary conversion: read, decode,
// pivot or unpivot, optionally sort, encode and write.
//
// The CLI builds a Request from flags and configuration and calls Run. Each
// run carries a correlation ID in its log records.
package conversion
