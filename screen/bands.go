package screen

// Bands maps each of the 16 priority values to the first picture row of
// its band.
type Bands [16]int

// DefaultBands is the priority table used until a picture sets its own.
var DefaultBands = EquidistantBands(42, 190)

// EquidistantBands spreads bands 1 to 15 evenly over [first, last]. The
// division truncates; row/priority conversions depend on exactly these
// boundaries, so adjacent bands may collapse onto the same row. Both ends
// are clamped to the screen and a reversed range is swapped.
func EquidistantBands(first, last int) Bands {
	first = clampInt(0, BaseHeight-1, first)
	last = clampInt(0, BaseHeight-1, last)
	if first > last {
		first, last = last, first
	}
	var b Bands
	for n := 1; n < len(b); n++ {
		b[n] = first + ((n-1)*(last-first))/14
	}
	return b
}

// ExplicitBands builds a table from 16 raw rows. Entry 0 is forced to row 0
// and no entry may be lower than the one before it.
func ExplicitBands(rows [16]uint8) Bands {
	var b Bands
	for n := 1; n < len(b); n++ {
		b[n] = int(rows[n])
		if b[n] < b[n-1] {
			b[n] = b[n-1]
		}
	}
	return b
}

// Start returns the first row of priority band n.
func (b Bands) Start(n int) int {
	return b[clampInt(0, len(b)-1, n)]
}

// BandOf returns the priority band that row y belongs to.
func (b Bands) BandOf(y int) int {
	for n := len(b) - 1; n > 0; n-- {
		if b[n] <= y {
			return n
		}
	}
	return 0
}
