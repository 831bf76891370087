package maze

// OpposingShift returns the mirror cell of border location l on the
// opposite edge of the same row or column (§4.4). Shifting at the
// result undoes a shift just performed at l, given the rotation the
// leftover carried immediately before that shift (§4.2 "The shift is
// its own inverse").
func OpposingShift(l Location, extent int) Location {
	switch {
	case l.Row == 0:
		return Location{Row: extent - 1, Column: l.Column}
	case l.Row == extent-1:
		return Location{Row: 0, Column: l.Column}
	case l.Column == 0:
		return Location{Row: l.Row, Column: extent - 1}
	case l.Column == extent-1:
		return Location{Row: l.Row, Column: 0}
	default:
		panic("maze: not a border location")
	}
}

// TranslateByShift returns where point p ends up after a shift at
// border location l (§4.4). A point on the shifted line moves one step
// in the shift direction; a point pushed off the far end wraps to the
// opposite border cell, representing the position the ejected leftover
// now occupies from the caller's perspective. Any other point is
// unchanged.
func TranslateByShift(p, l Location, extent int) Location {
	if !onShiftLine(p, l, extent) {
		return p
	}
	dir := ShiftDirection(l, extent)
	next := p.Add(dir)
	if next.Row < 0 || next.Row >= extent || next.Column < 0 || next.Column >= extent {
		return OpposingShift(l, extent)
	}
	return next
}

// onShiftLine reports whether p lies on the row/column that a shift at
// border location l slides.
func onShiftLine(p, l Location, extent int) bool {
	if l.Row == 0 || l.Row == extent-1 {
		return p.Column == l.Column
	}
	return p.Row == l.Row
}
