package automaton

import "testing"

type benchCell bool

func (c benchCell) Alive() bool { return bool(c) }

func (c benchCell) Next(n int) benchCell {
	switch n {
	case 3:
		return true
	case 2:
		return c
	default:
		return false
	}
}

func (benchCell) Live() benchCell { return true }

func newBenchGrid(w, h int, b Boundary) *Grid[benchCell] {
	g, _ := NewGrid[benchCell](w, h, b)
	for i := range g.cells {
		if i%3 == 0 {
			g.cells[i] = true
		}
	}
	return g
}

func BenchmarkComputeNext_Border(b *testing.B) {
	cur := newBenchGrid(64, 36, DeadBorder)
	nxt := newBenchGrid(64, 36, DeadBorder)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cur.ComputeNext(nxt)
		cur, nxt = nxt, cur
	}
}

func BenchmarkComputeNext_Wrap(b *testing.B) {
	cur := newBenchGrid(64, 36, Wrap)
	nxt := newBenchGrid(64, 36, Wrap)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cur.ComputeNext(nxt)
		cur, nxt = nxt, cur
	}
}

func BenchmarkComputeNext_Large(b *testing.B) {
	cur := newBenchGrid(256, 256, Wrap)
	nxt := newBenchGrid(256, 256, Wrap)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cur.ComputeNext(nxt)
		cur, nxt = nxt, cur
	}
}

func BenchmarkSnapshot(b *testing.B) {
	g := newBenchGrid(64, 36, DeadBorder)
	var f Frame

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Snapshot(&f)
	}
}
