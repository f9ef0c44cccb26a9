package chunk

// InBounds reports whether (x,y) is a valid local coordinate.
func (t Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.Size && y >= 0 && y < t.Size
}

// IsEdge reports whether (x,y) lies on the outermost ring of a chunk.
func (t Topology) IsEdge(x, y int) bool {
	if !t.InBounds(x, y) {
		return false
	}
	last := t.Size - 1
	return x == 0 || y == 0 || x == last || y == last
}

// Clamp pulls (x,y) into the valid local range.
func (t Topology) Clamp(x, y int) (int, int) {
	return clamp(x, 0, t.Size-1), clamp(y, 0, t.Size-1)
}

// AdjacentEntry maps an edge cell of name to the chunk on the other side of
// that edge and the cell it enters there. A corner cell crosses both seams
// and lands in the diagonal neighbour. Interior cells, out-of-range cells and
// malformed names return ok == false.
func (t Topology) AdjacentEntry(name Name, x, y int) (WorldCoord, bool) {
	if !t.IsEdge(x, y) {
		return WorldCoord{}, false
	}
	last := t.Size - 1
	dx, dy := 0, 0
	ex, ey := x, y
	switch x {
	case 0:
		dx, ex = -1, last
	case last:
		dx, ex = 1, 0
	}
	switch y {
	case 0:
		dy, ey = -1, last
	case last:
		dy, ey = 1, 0
	}
	next, ok := name.Shift(dx, dy)
	if !ok {
		return WorldCoord{}, false
	}
	return WorldCoord{Chunk: next, X: ex, Y: ey}, true
}

// Step moves c by one cell (|dx|,|dy| <= 1), crossing into the neighbouring
// chunk when the move leaves the local range. ok is false only when the
// chunk name cannot be decoded.
func (t Topology) Step(c WorldCoord, dx, dy int) (WorldCoord, bool) {
	nx, ny := c.X+dx, c.Y+dy
	if t.InBounds(nx, ny) {
		return WorldCoord{Chunk: c.Chunk, X: nx, Y: ny}, true
	}
	// Pin the axis that stays inside so AdjacentEntry only crosses the
	// seams actually being crossed.
	last := t.Size - 1
	px, py := c.X, c.Y
	if nx >= 0 && nx <= last {
		px = clamp(nx, 1, last-1)
	}
	if ny >= 0 && ny <= last {
		py = clamp(ny, 1, last-1)
	}
	entry, ok := t.AdjacentEntry(c.Chunk, px, py)
	if !ok {
		return WorldCoord{}, false
	}
	if nx >= 0 && nx <= last {
		entry.X = nx
	}
	if ny >= 0 && ny <= last {
		entry.Y = ny
	}
	return entry, true
}

// Offset moves c by an arbitrary displacement, crossing as many seams as
// needed.
func (t Topology) Offset(c WorldCoord, dx, dy int) (WorldCoord, bool) {
	nx, ny := c.X+dx, c.Y+dy
	if t.InBounds(nx, ny) {
		return WorldCoord{Chunk: c.Chunk, X: nx, Y: ny}, true
	}
	cx, lx := floorDiv(nx, t.Size)
	cy, ly := floorDiv(ny, t.Size)
	next, ok := c.Chunk.Shift(cx, cy)
	if !ok {
		return WorldCoord{}, false
	}
	return WorldCoord{Chunk: next, X: lx, Y: ly}, true
}

func floorDiv(v, size int) (q, r int) {
	q = v / size
	r = v % size
	if r < 0 {
		q--
		r += size
	}
	return q, r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
