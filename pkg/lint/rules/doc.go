// Package rules contains the built-in lint rules for adoclint.
//
// Rules are grouped by concern:
//   - headings.go: heading format, hierarchy, and top-level uniqueness
//   - blocks.go: delimited-block termination and spacing
//   - whitespace.go: blank lines, trailing whitespace, tabs, markers
//   - images.go: image macro attributes and file references
//   - tables.go: table format, structure, and cell content
//
// All rules are stateless; per-document scan state is local to each Check
// call so rule instances can be shared across files and goroutines.
package rules
