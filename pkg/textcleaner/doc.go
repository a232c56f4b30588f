// Package textcleaner provides a configurable text normalization pipeline.
//
// A cleaning run is an ordered list of named steps. Each step is a pure string to string rule picked from a fixed
// registry (HTML tag removal, entity decoding, accent folding, whitespace and quotation collapsing, URL, punctuation
// and digit removal, lowercasing). Steps are applied left to right, the output of one feeding the next, so the order
// chosen by the caller is significant: replacing tabs before collapsing spaces does not give the same result as the
// opposite order.
//
// Step keys are validated before any rule runs. An unknown key fails the whole call with an *UnknownStepError and no
// partial result is returned.
//
// The registry and compiled sequences are immutable and safe for concurrent use. A Cleaner is a small value holding
// the current text; copies are independent.
package textcleaner
