// Package hexgrid provides coordinate arithmetic for an odd-row offset hex
// grid. Positions are addressed as (row, col) with every odd row visually
// shifted half a hex to the right; movement math goes through cube
// coordinates (q, r, s with q+r+s = 0), which make the six neighbor
// directions plain vector additions.
package hexgrid

import "fmt"

// Offset is a hex position in odd-row offset coordinates.
type Offset struct {
	Row, Col int
}

// Cube is a hex position in cube coordinates. Valid cubes satisfy Q+R+S = 0.
type Cube struct {
	Q, R, S int
}

// Heading is one of the six hex facing directions, 0–5, increasing clockwise
// from east.
type Heading int

const (
	East Heading = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

var headingNames = [6]string{"E", "SE", "SW", "W", "NW", "NE"}

// headingVectors maps each heading to its unit cube direction.
var headingVectors = [6]Cube{
	{Q: 1, R: 0, S: -1}, // E
	{Q: 0, R: 1, S: -1}, // SE
	{Q: -1, R: 1, S: 0}, // SW
	{Q: -1, R: 0, S: 1}, // W
	{Q: 0, R: -1, S: 1}, // NW
	{Q: 1, R: -1, S: 0}, // NE
}

func (h Heading) String() string {
	if h < 0 || h > 5 {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

// Rotate returns the heading turned by delta steps, positive clockwise.
func (h Heading) Rotate(delta int) Heading {
	return Heading(((int(h)+delta)%6 + 6) % 6)
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	return h.Rotate(3)
}

// Vector returns the unit cube direction for this heading.
func (h Heading) Vector() Cube {
	return headingVectors[((int(h)%6)+6)%6]
}

// Add returns the component-wise sum of two cubes.
func (c Cube) Add(d Cube) Cube {
	return Cube{Q: c.Q + d.Q, R: c.R + d.R, S: c.S + d.S}
}

// ToCube converts an offset position to cube coordinates.
// Note row&1 is the row parity and row-(row&1) is always even, so the
// division is exact for negative rows too.
func (o Offset) ToCube() Cube {
	q := o.Col - (o.Row-(o.Row&1))/2
	r := o.Row
	return Cube{Q: q, R: r, S: -q - r}
}

// ToOffset converts cube coordinates back to an offset position.
func (c Cube) ToOffset() Offset {
	return Offset{
		Row: c.R,
		Col: c.Q + (c.R-(c.R&1))/2,
	}
}

// Step returns the offset position one hex away along the given heading.
func (o Offset) Step(h Heading) Offset {
	return o.ToCube().Add(h.Vector()).ToOffset()
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.Row, o.Col)
}
