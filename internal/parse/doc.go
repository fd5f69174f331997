// Package parse turns command-line items of the form "Label=k/n" into
// domain.Observation values.
//
// Whitespace around the label, the '=' and the '/' is ignored. The label is
// everything before the first '='; an empty label defaults to "k/n". Items
// that do not parse, or whose counts violate n > 0 and 0 <= k <= n, are
// rejected with a *FormatError before they reach internal/stats.
package parse
