package battleship

import (
	"strings"

	"github.com/mattn/go-runewidth"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

const (
	GridSize        int = 10
	ValidLowerBound int = 0
	ValidUpperBound int = GridSize - 1
)

// Symbols of a rendered grid cell.
const (
	SymbolUnknown   = "^"
	SymbolAliveDeck = "□"
	SymbolHitDeck   = "*"
	SymbolSunkDeck  = "x"
)

type Coordinates struct {
	Row    int `json:"row" mapstructure:"row"`
	Column int `json:"column" mapstructure:"column"`
}

func NewCoordinates(row, column int) Coordinates {
	return Coordinates{Row: row, Column: column}
}

// PointToCoordinates converts a [row, column] pair.
func PointToCoordinates(point []int) (Coordinates, error) {
	if len(point) != 2 {
		return Coordinates{}, cerr.ErrInvalidPoint(point)
	}
	return NewCoordinates(point[0], point[1]), nil
}

func (c Coordinates) IsInGrid() bool {
	return c.Row >= ValidLowerBound && c.Row <= ValidUpperBound &&
		c.Column >= ValidLowerBound && c.Column <= ValidUpperBound
}

// neighbors returns the 8 cells around c, including the ones outside the grid.
func (c Coordinates) neighbors() [8]Coordinates {
	return [8]Coordinates{
		{c.Row - 1, c.Column - 1},
		{c.Row - 1, c.Column},
		{c.Row - 1, c.Column + 1},
		{c.Row, c.Column - 1},
		{c.Row, c.Column + 1},
		{c.Row + 1, c.Column - 1},
		{c.Row + 1, c.Column},
		{c.Row + 1, c.Column + 1},
	}
}

type Grid [GridSize][GridSize]string

// Creates a grid where every cell is SymbolUnknown
func NewGrid() Grid {
	var grid Grid
	for row := range grid {
		for column := range grid[row] {
			grid[row][column] = SymbolUnknown
		}
	}
	return grid
}

// String prints one row per line. Cells are padded to the widest symbol
// so the columns stay aligned when a terminal renders the deck symbol wide.
func (g Grid) String() string {
	width := 1
	for row := range g {
		for column := range g[row] {
			if w := runewidth.StringWidth(g[row][column]); w > width {
				width = w
			}
		}
	}

	var sb strings.Builder
	for row := range g {
		for column := range g[row] {
			if column > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(runewidth.FillRight(g[row][column], width))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows returns the grid as nested slices, the shape the console protocol sends.
func (g Grid) Rows() [][]string {
	rows := make([][]string, GridSize)
	for row := range g {
		rows[row] = make([]string, GridSize)
		copy(rows[row], g[row][:])
	}
	return rows
}
