package game

import "github.com/mkessler/lone-uboat/internal/hexgrid"

// Boat is the player U-boat: a chart position plus a facing.
type Boat struct {
	Pos     hexgrid.Offset
	Heading hexgrid.Heading
}

// Turn rotates the boat in place. delta is +1 for clockwise, -1 for
// counter-clockwise.
func (b *Boat) Turn(delta int) {
	b.Heading = b.Heading.Rotate(delta)
}

// Advance moves the boat one hex along its current heading. The move commits
// only when the target hex is navigable water inside the chart; a blocked
// attempt leaves the boat where it is. Reports whether the boat moved.
func (b *Boat) Advance(c *Chart) bool {
	target := b.Pos.Step(b.Heading)
	if !c.At(target).Navigable() {
		return false
	}
	b.Pos = target
	return true
}
