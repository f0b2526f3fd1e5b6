package cells

// HighLife is the B36/S23 variant: Conway survival plus birth on six
// live neighbors, which makes small replicators possible.
type HighLife bool

func (c HighLife) Alive() bool { return bool(c) }

func (c HighLife) Next(liveNeighbors int) HighLife {
	if c {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3 || liveNeighbors == 6
}

func (HighLife) Live() HighLife { return true }
