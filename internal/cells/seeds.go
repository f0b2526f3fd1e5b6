package cells

// Seeds is the B2/S rule: a dead cell with exactly two live neighbors
// is born and no live cell survives, so populations explode or burn out.
type Seeds bool

func (c Seeds) Alive() bool { return bool(c) }

func (c Seeds) Next(liveNeighbors int) Seeds {
	if c {
		return false
	}
	return liveNeighbors == 2
}

func (Seeds) Live() Seeds { return true }
