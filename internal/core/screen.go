package core

import "strings"

// Color is a foreground color index. The terminal front end maps each value
// to an ANSI 256-color style.
type Color uint8

// Palette. The base sixteen follow the ANSI order.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow // Small explosions
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed    // Lives, player death blast
	ColorBrightGreen  // Ship body
	ColorBrightYellow // Bullets, large explosions
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan  // Ship nose
	ColorBrightWhite // Overlay titles
	ColorOrange      // Mobs
	ColorGray        // Mob spin marker
)

// Cell is a single screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is the character grid a game draws into each frame. The front end
// turns it into terminal output; games never touch the terminal directly.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen returns a blank width x height grid.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = makeCells(width, height)
	return s
}

func makeCells(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blankCell
		}
		cells[y] = row
	}
	return cells
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize changes the grid size. The overlapping top-left region survives.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	next := makeCells(width, height)
	for y := 0; y < min(height, s.height); y++ {
		copy(next[y], s.cells[y][:min(width, s.width)])
	}
	s.width, s.height, s.cells = width, height, next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for _, row := range s.cells {
		for x := range row {
			row[x] = blankCell
		}
	}
}

// Set writes r in the default color. Writes off the grid are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored writes r in color c. Writes off the grid are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y][x] = Cell{Rune: r, Color: c}
	}
}

// GetCell reads a cell; positions off the grid read as blank.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes text left to right from (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered writes text on row y, centered horizontally.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

func (s *Screen) DrawRect(r Rect, fill rune) {
	s.FillRect(r, fill, ColorDefault)
}

// FillRect paints every cell of r with fill in color c.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with single-line box characters.
func (s *Screen) DrawBox(r Rect) {
	left, top := r.X, r.Y
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := left + 1; x < right; x++ {
		s.Set(x, top, '─')
		s.Set(x, bottom, '─')
	}
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// String returns the grid without color, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as plain text. Rows off the grid read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
