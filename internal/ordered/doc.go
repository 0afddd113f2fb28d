// Package ordered provides a string-keyed map that remembers insertion order.
//
// Translation dictionaries are ordered documents: the first language that
// appears in a file defines the default language order and the first time a
// key is seen defines where it lands in the output. Map keeps that order so
// decoders, the pivot transformer, and encoders agree on it without sorting.
package ordered
