package automaton_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/automaton"
)

// conway is the standard B3/S23 rule, kept local so the engine is
// exercised against known dynamics without pulling in the rule catalog.
type conway bool

func (c conway) Alive() bool { return bool(c) }

func (c conway) Next(n int) conway {
	switch n {
	case 3:
		return true
	case 2:
		return c
	default:
		return false
	}
}

func (conway) Live() conway { return true }

// fading is a three-state rule for snapshot class specs: live cells
// decay through a ghost state before dying.
type fading uint8

func (f fading) Alive() bool { return f == 1 }

func (f fading) Next(n int) fading {
	switch f {
	case 0:
		if n == 2 {
			return 1
		}
		return 0
	case 1:
		return 2
	default:
		return 0
	}
}

func (fading) Live() fading { return 1 }

func (f fading) Class() uint8 {
	switch f {
	case 1:
		return automaton.ClassAlive
	case 2:
		return automaton.ClassGhost
	default:
		return automaton.ClassDead
	}
}

func newConwayGrid(w, h int, b automaton.Boundary) *automaton.Grid[conway] {
	g, err := automaton.NewGrid[conway](w, h, b)
	Expect(err).NotTo(HaveOccurred())
	return g
}

var _ = Describe("Grid", func() {
	Describe("construction", func() {
		It("creates an all-dead grid of the requested size", func() {
			g := newConwayGrid(4, 3, automaton.DeadBorder)
			Expect(g.Width()).To(Equal(4))
			Expect(g.Height()).To(Equal(3))
			Expect(g.Population()).To(BeZero())
		})

		It("rejects non-positive dimensions", func() {
			_, err := automaton.NewGrid[conway](0, 3, automaton.DeadBorder)
			Expect(err).To(MatchError(automaton.ErrInvalidDimensions))

			_, err = automaton.NewGrid[conway](3, -1, automaton.Wrap)
			Expect(err).To(MatchError(automaton.ErrInvalidDimensions))
		})

		It("accepts a 1x1 grid", func() {
			g := newConwayGrid(1, 1, automaton.Wrap)
			Expect(g.Width()).To(Equal(1))
		})
	})

	Describe("cell access", func() {
		var g *automaton.Grid[conway]

		BeforeEach(func() {
			g = newConwayGrid(5, 5, automaton.DeadBorder)
		})

		It("round-trips a cell through Set and At", func() {
			Expect(g.Set(2, 3, true)).To(Succeed())
			c, err := g.At(2, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Alive()).To(BeTrue())
		})

		It("rejects out-of-range reads and writes", func() {
			_, err := g.At(5, 0)
			Expect(err).To(MatchError(automaton.ErrOutOfBounds))

			Expect(g.Set(0, -1, true)).To(MatchError(automaton.ErrOutOfBounds))
			Expect(g.SetAlive(-1, 0, true)).To(MatchError(automaton.ErrOutOfBounds))
		})

		It("writes live and dead states through SetAlive", func() {
			Expect(g.SetAlive(1, 1, true)).To(Succeed())
			Expect(g.Population()).To(Equal(1))

			Expect(g.SetAlive(1, 1, false)).To(Succeed())
			Expect(g.Population()).To(BeZero())
		})
	})

	Describe("neighbor counting", func() {
		It("sees a single live cell from all 8 surrounding positions", func() {
			g := newConwayGrid(5, 5, automaton.DeadBorder)
			Expect(g.SetAlive(2, 2, true)).To(Succeed())

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					n, err := g.LiveNeighbors(2+dx, 2+dy)
					Expect(err).NotTo(HaveOccurred())
					if dx == 0 && dy == 0 {
						Expect(n).To(BeZero(), "a cell is not its own neighbor")
					} else {
						Expect(n).To(Equal(1))
					}
				}
			}
		})

		It("treats the outside as dead under a dead border", func() {
			g := newConwayGrid(5, 5, automaton.DeadBorder)
			Expect(g.SetAlive(0, 0, true)).To(Succeed())

			n, err := g.LiveNeighbors(4, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())

			n, err = g.LiveNeighbors(1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("wraps corner neighborhoods on a torus", func() {
			g := newConwayGrid(5, 5, automaton.Wrap)
			Expect(g.SetAlive(0, 0, true)).To(Succeed())

			n, err := g.LiveNeighbors(4, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("rejects an out-of-range center", func() {
			g := newConwayGrid(5, 5, automaton.Wrap)
			_, err := g.LiveNeighbors(5, 5)
			Expect(err).To(MatchError(automaton.ErrOutOfBounds))
		})
	})

	Describe("ComputeNext", func() {
		It("rejects a destination of different dimensions", func() {
			src := newConwayGrid(5, 5, automaton.DeadBorder)
			dst := newConwayGrid(5, 4, automaton.DeadBorder)
			Expect(src.ComputeNext(dst)).To(MatchError(automaton.ErrDimensionMismatch))
			Expect(src.ComputeNext(nil)).To(MatchError(automaton.ErrDimensionMismatch))
		})

		It("keeps an empty grid empty", func() {
			src := newConwayGrid(6, 6, automaton.Wrap)
			dst := newConwayGrid(6, 6, automaton.Wrap)
			Expect(src.ComputeNext(dst)).To(Succeed())
			Expect(dst.Population()).To(BeZero())
		})

		It("updates all cells simultaneously from the prior snapshot", func() {
			src := newConwayGrid(5, 5, automaton.DeadBorder)
			dst := newConwayGrid(5, 5, automaton.DeadBorder)
			for _, y := range []int{1, 2, 3} {
				Expect(src.SetAlive(2, y, true)).To(Succeed())
			}

			Expect(src.ComputeNext(dst)).To(Succeed())

			for _, x := range []int{1, 2, 3} {
				c, err := dst.At(x, 2)
				Expect(err).NotTo(HaveOccurred())
				Expect(c.Alive()).To(BeTrue(), "blinker should rotate in one step")
			}
			Expect(dst.Population()).To(Equal(3))
		})

		It("leaves the source untouched", func() {
			src := newConwayGrid(5, 5, automaton.DeadBorder)
			dst := newConwayGrid(5, 5, automaton.DeadBorder)
			Expect(src.SetAlive(2, 2, true)).To(Succeed())

			Expect(src.ComputeNext(dst)).To(Succeed())

			c, err := src.At(2, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Alive()).To(BeTrue())
			Expect(src.Population()).To(Equal(1))
		})

		It("diverges between wrap and dead border for edge populations", func() {
			border := newConwayGrid(5, 5, automaton.DeadBorder)
			wrap := newConwayGrid(5, 5, automaton.Wrap)
			for _, x := range []int{1, 2, 3} {
				Expect(border.SetAlive(x, 0, true)).To(Succeed())
				Expect(wrap.SetAlive(x, 0, true)).To(Succeed())
			}

			nextBorder := newConwayGrid(5, 5, automaton.DeadBorder)
			nextWrap := newConwayGrid(5, 5, automaton.Wrap)
			Expect(border.ComputeNext(nextBorder)).To(Succeed())
			Expect(wrap.ComputeNext(nextWrap)).To(Succeed())

			b, err := nextBorder.At(2, 4)
			Expect(err).NotTo(HaveOccurred())
			w, err := nextWrap.At(2, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Alive()).To(BeFalse())
			Expect(w.Alive()).To(BeTrue(), "the row's births wrap around the top edge")
		})
	})

	Describe("Clone and Fill", func() {
		It("clones into an independent grid", func() {
			g := newConwayGrid(4, 4, automaton.Wrap)
			Expect(g.SetAlive(1, 1, true)).To(Succeed())

			c := g.Clone()
			Expect(c.Boundary()).To(Equal(automaton.Wrap))
			Expect(c.Population()).To(Equal(1))

			Expect(c.SetAlive(2, 2, true)).To(Succeed())
			Expect(g.Population()).To(Equal(1))
		})

		It("clears every cell", func() {
			g := newConwayGrid(4, 4, automaton.DeadBorder)
			g.Fill(conway(true))
			Expect(g.Population()).To(Equal(16))

			g.Clear()
			Expect(g.Population()).To(BeZero())
		})
	})

	Describe("View", func() {
		It("exposes reads without mutation", func() {
			g := newConwayGrid(3, 3, automaton.DeadBorder)
			Expect(g.SetAlive(0, 2, true)).To(Succeed())

			v := g.View()
			Expect(v.Width()).To(Equal(3))
			Expect(v.Height()).To(Equal(3))
			Expect(v.Boundary()).To(Equal(automaton.DeadBorder))
			Expect(v.Population()).To(Equal(1))

			c, err := v.At(0, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Alive()).To(BeTrue())

			_, err = v.At(3, 0)
			Expect(err).To(MatchError(automaton.ErrOutOfBounds))
		})

		It("tracks later changes to the grid", func() {
			g := newConwayGrid(3, 3, automaton.DeadBorder)
			v := g.View()
			Expect(g.SetAlive(1, 1, true)).To(Succeed())
			Expect(v.Population()).To(Equal(1))
		})
	})

	Describe("Snapshot", func() {
		It("records alive cells as display classes", func() {
			g := newConwayGrid(3, 2, automaton.DeadBorder)
			Expect(g.SetAlive(1, 0, true)).To(Succeed())

			var f automaton.Frame
			g.Snapshot(&f)

			Expect(f.Width).To(Equal(3))
			Expect(f.Height).To(Equal(2))
			Expect(f.Population).To(Equal(1))
			Expect(f.At(1, 0)).To(Equal(automaton.ClassAlive))
			Expect(f.AliveAt(1, 0)).To(BeTrue())
			Expect(f.At(0, 0)).To(Equal(automaton.ClassDead))
		})

		It("reuses the frame's cell buffer across snapshots", func() {
			g := newConwayGrid(8, 8, automaton.DeadBorder)

			var f automaton.Frame
			g.Snapshot(&f)
			first := &f.Cells[0]
			g.Snapshot(&f)
			Expect(&f.Cells[0] == first).To(BeTrue())
		})

		It("reports ghost classes as visible but not alive", func() {
			g, err := automaton.NewGrid[fading](3, 3, automaton.DeadBorder)
			Expect(err).NotTo(HaveOccurred())
			nxt, err := automaton.NewGrid[fading](3, 3, automaton.DeadBorder)
			Expect(err).NotTo(HaveOccurred())

			Expect(g.SetAlive(1, 1, true)).To(Succeed())
			Expect(g.ComputeNext(nxt)).To(Succeed())

			var f automaton.Frame
			nxt.Snapshot(&f)
			Expect(f.At(1, 1)).To(Equal(automaton.ClassGhost))
			Expect(f.AliveAt(1, 1)).To(BeFalse())
			Expect(f.Population).To(BeZero())
		})
	})
})

var _ = Describe("Boundary", func() {
	It("parses config names", func() {
		for name, want := range map[string]automaton.Boundary{
			"border": automaton.DeadBorder,
			"dead":   automaton.DeadBorder,
			"":       automaton.DeadBorder,
			"wrap":   automaton.Wrap,
			"torus":  automaton.Wrap,
		} {
			got, err := automaton.ParseBoundary(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}
	})

	It("rejects unknown names", func() {
		_, err := automaton.ParseBoundary("moebius")
		Expect(err).To(HaveOccurred())
	})

	It("prints config names", func() {
		Expect(automaton.DeadBorder.String()).To(Equal("border"))
		Expect(automaton.Wrap.String()).To(Equal("wrap"))
	})
})

var _ = Describe("StepError", func() {
	It("formats the generation and unwraps the cause", func() {
		err := &automaton.StepError{Generation: 12, Wrapped: automaton.ErrDimensionMismatch}
		Expect(err.Error()).To(ContainSubstring("generation 12"))
		Expect(err).To(MatchError(automaton.ErrDimensionMismatch))
	})
})
