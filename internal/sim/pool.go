package sim

import (
	"sync"

	"github.com/san-kum/lifesim/internal/automaton"
)

// FramePool recycles display frames so steady-state stepping does not
// allocate.
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &automaton.Frame{}
			},
		},
	}
}

func (p *FramePool) Get() *automaton.Frame {
	return p.pool.Get().(*automaton.Frame)
}

// Put resets the frame's header but keeps its cell buffer for reuse.
func (p *FramePool) Put(f *automaton.Frame) {
	if f == nil {
		return
	}
	f.Width, f.Height = 0, 0
	f.Generation = 0
	f.Population = 0
	f.Cells = f.Cells[:0]
	p.pool.Put(f)
}
