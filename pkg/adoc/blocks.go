package adoc

// Block is a delimited region paired by ScanBlocks. Line indexes are
// 0-based. CloseLine is -1 for an unterminated block.
type Block struct {
	// Marker is the delimiter string ("----", "====", ...).
	Marker string

	// OpenLine is the index of the opening delimiter.
	OpenLine int

	// CloseLine is the index of the closing delimiter, -1 if unterminated.
	CloseLine int
}

// Terminated reports whether the block has a matching closing delimiter.
func (b Block) Terminated() bool {
	return b.CloseLine >= 0
}

// ScanBlocks pairs block delimiters across a document in a single forward
// pass. Each marker string is tracked independently: the second occurrence
// of a marker always closes the first, so two same-marker blocks cannot
// nest, while blocks with distinct markers may interleave freely.
func ScanBlocks(lines []string) []Block {
	var blocks []Block

	// marker -> index into blocks of the currently open block
	open := make(map[string]int)

	for i, line := range lines {
		marker, ok := BlockDelimiter(line)
		if !ok {
			continue
		}

		if idx, isOpen := open[marker]; isOpen {
			blocks[idx].CloseLine = i
			delete(open, marker)
			continue
		}

		open[marker] = len(blocks)
		blocks = append(blocks, Block{
			Marker:    marker,
			OpenLine:  i,
			CloseLine: -1,
		})
	}

	return blocks
}
