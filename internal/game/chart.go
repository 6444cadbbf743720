package game

import (
	"fmt"

	"github.com/mkessler/lone-uboat/internal/hexgrid"
)

// Chart is the immutable terrain grid, stored row-major.
type Chart struct {
	rows  int
	cols  int
	cells []Terrain
}

// NewChart builds a chart from terrain rows. All rows must have the same
// length and the grid must be non-empty.
func NewChart(rows [][]Terrain) (*Chart, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("chart is empty")
	}
	cols := len(rows[0])
	c := &Chart{
		rows:  len(rows),
		cols:  cols,
		cells: make([]Terrain, 0, len(rows)*cols),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("chart row %d has %d cells, want %d", i, len(row), cols)
		}
		c.cells = append(c.cells, row...)
	}
	return c, nil
}

// Rows returns the number of chart rows.
func (c *Chart) Rows() int { return c.rows }

// Cols returns the number of chart columns.
func (c *Chart) Cols() int { return c.cols }

// InBounds reports whether the position lies on the grid.
func (c *Chart) InBounds(pos hexgrid.Offset) bool {
	return pos.Row >= 0 && pos.Row < c.rows && pos.Col >= 0 && pos.Col < c.cols
}

// At returns the terrain at pos, or TerrainOutOfBounds for positions off the
// grid.
func (c *Chart) At(pos hexgrid.Offset) Terrain {
	if !c.InBounds(pos) {
		return TerrainOutOfBounds
	}
	return c.cells[pos.Row*c.cols+pos.Col]
}

func (c *Chart) String() string {
	return fmt.Sprintf("Chart(%dx%d)", c.rows, c.cols)
}
