// Package app wires the parse, compute and render steps for the CLI.
//
// It takes a Config, validates it once, and exposes Run, which turns raw
// "Label=k/n" items into a rendered interval table.
package app
