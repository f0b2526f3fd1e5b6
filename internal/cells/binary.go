package cells

// Binary is the standard Conway rule (B3/S23).
type Binary bool

func (c Binary) Alive() bool { return bool(c) }

// Next follows the classic formulation: three live neighbors always
// yields a live cell, two leaves the cell unchanged, anything else
// leaves it dead.
func (c Binary) Next(liveNeighbors int) Binary {
	switch liveNeighbors {
	case 3:
		return true
	case 2:
		return c
	default:
		return false
	}
}

func (Binary) Live() Binary { return true }
