package adoc

import "strings"

// tableMarker is the delimiter that opens and closes a pipe table.
const tableMarker = "|==="

// Row is one physical line inside a table region.
type Row struct {
	// LineIndex is the 0-based document line index.
	LineIndex int

	// Text is the raw line content.
	Text string
}

// Table is a delimited table region. Rows includes the opening marker line
// and, when Closed, the closing marker line.
type Table struct {
	Rows   []Row
	Closed bool
}

// StartLine returns the 0-based index of the opening |=== line.
func (t *Table) StartLine() int {
	return t.Rows[0].LineIndex
}

// ContentRows returns the rows between the delimiters: everything after the
// opening marker, excluding the closing marker when the table is closed.
func (t *Table) ContentRows() []Row {
	if len(t.Rows) <= 1 {
		return nil
	}
	if t.Closed {
		return t.Rows[1 : len(t.Rows)-1]
	}
	return t.Rows[1:]
}

// ExtractTables segments a document into |===-delimited table regions.
// The opening and closing marker lines are included in each region. An
// unclosed trailing table is still returned best-effort; higher-level rules
// decide whether that is an error.
func ExtractTables(lines []string) []*Table {
	var tables []*Table
	var current *Table

	for i, line := range lines {
		if strings.TrimSpace(line) == tableMarker {
			if current != nil {
				current.Rows = append(current.Rows, Row{LineIndex: i, Text: line})
				current.Closed = true
				tables = append(tables, current)
				current = nil
			} else {
				current = &Table{Rows: []Row{{LineIndex: i, Text: line}}}
			}
			continue
		}
		if current != nil {
			current.Rows = append(current.Rows, Row{LineIndex: i, Text: line})
		}
	}

	if current != nil {
		tables = append(tables, current)
	}

	return tables
}

// Cell is one decomposed table cell.
type Cell struct {
	// Style is the one-character style prefix: "a" (AsciiDoc-block cell),
	// "l" (literal cell), or "" for a plain cell.
	Style string

	// Text is the cell content, whitespace-trimmed.
	Text string
}

// IsRowLine reports whether a table row carries cell content: it contains a
// '|' and is not the table marker itself.
func IsRowLine(line string) bool {
	stripped := strings.TrimSpace(line)
	return strings.Contains(stripped, "|") && stripped != tableMarker
}

// SplitCells decomposes a table row into cells. This is the canonical
// cell-splitting definition shared by all table checks: the row is split on
// '|', the segment before the first '|' is discarded (empty for a well-formed
// row), and a segment consisting solely of a style letter ("a" or "l")
// attaches to the following cell as its style prefix instead of counting as
// a cell of its own.
func SplitCells(line string) []Cell {
	stripped := strings.TrimSpace(line)
	if stripped == tableMarker {
		return nil
	}

	parts := strings.Split(stripped, "|")
	if len(parts) <= 1 {
		return nil
	}

	var cells []Cell
	pendingStyle := ""

	// The leading segment is dropped unless it is itself a style prefix
	// for the first cell, as in "a|content".
	if lead := strings.TrimSpace(parts[0]); lead == "a" || lead == "l" {
		pendingStyle = lead
	}
	parts = parts[1:]

	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		if (trimmed == "a" || trimmed == "l") && i < len(parts)-1 {
			pendingStyle = trimmed
			continue
		}
		cells = append(cells, Cell{Style: pendingStyle, Text: trimmed})
		pendingStyle = ""
	}

	return cells
}

// CellOffsets returns the byte offsets of every '|' in a row. Alignment
// checks compare these across rows; content is irrelevant.
func CellOffsets(line string) []int {
	var offsets []int
	for i := 0; i < len(line); i++ {
		if line[i] == '|' {
			offsets = append(offsets, i)
		}
	}
	return offsets
}
