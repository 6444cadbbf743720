package hexgrid

import "testing"

func TestRotateClosure(t *testing.T) {
	for h := East; h <= NorthEast; h++ {
		got := h
		for i := 0; i < 6; i++ {
			got = got.Rotate(1)
		}
		if got != h {
			t.Errorf("six clockwise turns from %v gave %v, want %v", h, got, h)
		}

		got = h
		for i := 0; i < 6; i++ {
			got = got.Rotate(-1)
		}
		if got != h {
			t.Errorf("six counter-clockwise turns from %v gave %v, want %v", h, got, h)
		}
	}
}

func TestRotateWraps(t *testing.T) {
	if got := NorthEast.Rotate(1); got != East {
		t.Errorf("NorthEast.Rotate(1) = %v, want East", got)
	}
	if got := East.Rotate(-1); got != NorthEast {
		t.Errorf("East.Rotate(-1) = %v, want NorthEast", got)
	}
}

func TestReverse(t *testing.T) {
	pairs := []struct{ a, b Heading }{
		{East, West},
		{SouthEast, NorthWest},
		{SouthWest, NorthEast},
	}
	for _, p := range pairs {
		if got := p.a.Reverse(); got != p.b {
			t.Errorf("%v.Reverse() = %v, want %v", p.a, got, p.b)
		}
		if got := p.b.Reverse(); got != p.a {
			t.Errorf("%v.Reverse() = %v, want %v", p.b, got, p.a)
		}
	}
}

func TestOffsetCubeRoundTrip(t *testing.T) {
	for row := 0; row < 13; row++ {
		for col := 0; col < 15; col++ {
			o := Offset{Row: row, Col: col}
			c := o.ToCube()
			if c.Q+c.R+c.S != 0 {
				t.Fatalf("%v.ToCube() = %+v violates q+r+s=0", o, c)
			}
			if back := c.ToOffset(); back != o {
				t.Errorf("round trip of %v gave %v", o, back)
			}
		}
	}
}

func TestStepFromOddRow(t *testing.T) {
	// Row 7 is odd, so diagonal neighbors shift toward the higher column.
	start := Offset{Row: 7, Col: 7}
	want := map[Heading]Offset{
		East:      {Row: 7, Col: 8},
		SouthEast: {Row: 8, Col: 8},
		SouthWest: {Row: 8, Col: 7},
		West:      {Row: 7, Col: 6},
		NorthWest: {Row: 6, Col: 7},
		NorthEast: {Row: 6, Col: 8},
	}
	for h, w := range want {
		if got := start.Step(h); got != w {
			t.Errorf("Step(%v) from %v = %v, want %v", h, start, got, w)
		}
	}
}

func TestStepFromEvenRow(t *testing.T) {
	// Row 6 is even, so diagonal neighbors shift toward the lower column.
	start := Offset{Row: 6, Col: 7}
	want := map[Heading]Offset{
		East:      {Row: 6, Col: 8},
		SouthEast: {Row: 7, Col: 7},
		SouthWest: {Row: 7, Col: 6},
		West:      {Row: 6, Col: 6},
		NorthWest: {Row: 5, Col: 6},
		NorthEast: {Row: 5, Col: 7},
	}
	for h, w := range want {
		if got := start.Step(h); got != w {
			t.Errorf("Step(%v) from %v = %v, want %v", h, start, got, w)
		}
	}
}

func TestStepReverseRoundTrip(t *testing.T) {
	for row := 0; row < 13; row++ {
		for col := 0; col < 15; col++ {
			start := Offset{Row: row, Col: col}
			for h := East; h <= NorthEast; h++ {
				back := start.Step(h).Step(h.Reverse())
				if back != start {
					t.Errorf("step %v then %v from %v ended at %v", h, h.Reverse(), start, back)
				}
			}
		}
	}
}
