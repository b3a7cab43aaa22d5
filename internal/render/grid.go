// Package render composes the viewer's character-cell frame from simulation
// state. It has no window dependency; see render/screen for drawing.
package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// Blank reports whether the cell holds nothing visible.
func (c Cell) Blank() bool {
	return (c.Glyph == ' ' || c.Glyph == 0) && c.BG == ColorBlack
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
	return &CellBuffer{Cols: cols, Rows: rows, Cells: cells}
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one
// cell; runes outside Latin-1 print as '?'. It returns the number of cells
// written.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
	return offset
}

// String returns row y as text, for tests and debugging.
func (b *CellBuffer) String(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	row := make([]byte, b.Cols)
	for x := range row {
		row[x] = b.Cells[y*b.Cols+x].Glyph
	}
	return string(row)
}

// SetIfBlank writes a cell only where nothing has been drawn yet.
func (b *CellBuffer) SetIfBlank(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows && b.Cells[y*b.Cols+x].Blank() {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// ClearRow blanks row y.
func (b *CellBuffer) ClearRow(y int) {
	for x := 0; x < b.Cols; x++ {
		b.Set(x, y, ' ', ColorWhite, ColorBlack)
	}
}

// Bar draws a width-cell gauge at (x, y) filled to val/limit.
func (b *CellBuffer) Bar(x, y, width int, val, limit float64, fg uint8) {
	filled := 0
	if limit > 0 {
		filled = int(float64(width) * val / limit)
	}
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphBlock, fg, ColorBlack)
		} else {
			b.Set(x+i, y, GlyphShade, ColorDarkGray, ColorBlack)
		}
	}
}
