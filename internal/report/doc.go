// Package report renders computed intervals as a fixed-width text table.
//
// Columns are left-justified and separated by two spaces, with a dash rule
// under the header. Values are rounded with strconv's fixed-point formatting,
// which is monotone, so a row's low, p̂ and high strings keep their numeric
// order at any precision.
package report
