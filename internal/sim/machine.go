package sim

import "github.com/san-kum/lifesim/internal/automaton"

type machine[T automaton.Cell[T]] struct {
	*Simulator[T]
	rule string
}

// NewMachine wraps a typed simulator with its registry name so drivers
// can stay monomorphic.
func NewMachine[T automaton.Cell[T]](rule string, w, h int, b automaton.Boundary) (Machine, error) {
	s, err := New[T](w, h, b)
	if err != nil {
		return nil, err
	}
	return &machine[T]{Simulator: s, rule: rule}, nil
}

func (m *machine[T]) Rule() string { return m.rule }
