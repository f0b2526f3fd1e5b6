package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifesim/internal/automaton"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/render"
	"github.com/san-kum/lifesim/internal/sim"
)

const historyCapacity = 600

// The board is drawn below the header and status lines with one column
// of padding; mouse mapping depends on this layout.
const (
	boardTop  = 2
	boardLeft = 1
)

const (
	minInterval = 15 * time.Millisecond
	maxInterval = 2 * time.Second
)

type TickMsg time.Time

// Model runs one machine interactively: ticks pace the generations,
// keys and mouse edit the board between them.
type Model struct {
	machine  sim.Machine
	renderer render.Renderer
	frame    automaton.Frame

	interval time.Duration
	running  bool
	note     string

	cursorX, cursorY int
	density          float64

	patterns []pattern.Pattern
	nextPat  int

	popHistory []float64
	chartH     int

	showHelp bool
}

func NewModel(m sim.Machine, cfg *config.Config) Model {
	SetTheme(cfg.UI.Theme)
	r, err := render.ByName(cfg.UI.Renderer)
	if err != nil {
		r = render.Blocks{}
	}

	density := cfg.Init.Density
	if density == 0 {
		density = config.DefaultDensity
	}

	model := Model{
		machine:    m,
		renderer:   r,
		interval:   time.Duration(cfg.Run.StepMS) * time.Millisecond,
		running:    true,
		cursorX:    m.Width() / 2,
		cursorY:    m.Height() / 2,
		density:    density,
		patterns:   pattern.All(),
		chartH:     cfg.UI.ChartHeight,
		popHistory: make([]float64, 0, historyCapacity),
	}
	m.Snapshot(&model.frame)
	return model
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and paces the machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			m.running = false
			m.advance()
		case "r":
			m.reseed()
		case "c":
			m.clearBoard()
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "enter", "t":
			m.toggleAtCursor()
		case "p":
			m.stampNext()
		case "+", "=":
			m.faster()
		case "-", "_":
			m.slower()
		case "b":
			m.swapRenderer()
		case "T":
			m.cycleTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.paint(msg)
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	m.note = ""
	if err := m.machine.Step(); err != nil {
		m.note = err.Error()
		m.running = false
		return
	}
	m.refresh()
	m.popHistory = append(m.popHistory, float64(m.frame.Population))
	if len(m.popHistory) > historyCapacity {
		m.popHistory = m.popHistory[1:]
	}
}

func (m *Model) refresh() {
	m.machine.Snapshot(&m.frame)
}

func (m *Model) reseed() {
	if err := m.machine.Randomize(0, m.density); err != nil {
		m.note = err.Error()
		return
	}
	m.popHistory = m.popHistory[:0]
	m.refresh()
}

func (m *Model) clearBoard() {
	if err := m.machine.Clear(); err != nil {
		m.note = err.Error()
		return
	}
	m.popHistory = m.popHistory[:0]
	m.refresh()
}

func (m *Model) moveCursor(dx, dy int) {
	x, y := m.cursorX+dx, m.cursorY+dy
	if x >= 0 && x < m.machine.Width() {
		m.cursorX = x
	}
	if y >= 0 && y < m.machine.Height() {
		m.cursorY = y
	}
}

func (m *Model) toggleAtCursor() {
	if err := m.machine.Toggle(m.cursorX, m.cursorY); err != nil {
		m.note = err.Error()
		return
	}
	m.refresh()
}

func (m *Model) stampNext() {
	p := m.patterns[m.nextPat]
	m.nextPat = (m.nextPat + 1) % len(m.patterns)
	if err := pattern.Stamp(m.machine, p, m.cursorX, m.cursorY); err != nil {
		m.note = err.Error()
		return
	}
	m.note = "stamped " + p.Name
	m.refresh()
}

func (m *Model) faster() {
	m.interval /= 2
	if m.interval < minInterval {
		m.interval = minInterval
	}
}

func (m *Model) slower() {
	m.interval *= 2
	if m.interval > maxInterval {
		m.interval = maxInterval
	}
}

func (m *Model) swapRenderer() {
	if _, ok := m.renderer.(render.Blocks); ok {
		m.renderer = render.Braille{}
	} else {
		m.renderer = render.Blocks{}
	}
}

func (m *Model) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// paint maps a mouse event to a cell edit: left button draws, right
// button erases, drags paint continuously.
func (m *Model) paint(msg tea.MouseMsg) {
	if _, ok := m.renderer.(render.Blocks); !ok {
		return // braille packs several cells per character
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}

	var alive bool
	switch msg.Button {
	case tea.MouseButtonLeft:
		alive = true
	case tea.MouseButtonRight:
		alive = false
	default:
		return
	}

	x, y := msg.X-boardLeft, msg.Y-boardTop
	if err := m.machine.SetAlive(x, y, alive); err != nil {
		return
	}
	m.cursorX, m.cursorY = x, y
	m.refresh()
}

// View renders the TUI interface.
func (m Model) View() string {
	if m.showHelp {
		return helpOverlay
	}

	st := themedStyles(CurrentTheme)
	var s strings.Builder

	s.WriteString(st.header.Render(fmt.Sprintf("lifesim  %s  %dx%d",
		m.machine.Rule(), m.machine.Width(), m.machine.Height())))
	s.WriteByte('\n')

	status := st.running.Render("RUNNING")
	if !m.running {
		status = st.paused.Render("PAUSED")
	}
	s.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s  %s  %s",
		status,
		st.label.Render("gen")+" "+st.value.Render(fmt.Sprintf("%d", m.machine.Generation())),
		st.label.Render("pop")+" "+st.value.Render(fmt.Sprintf("%d", m.frame.Population)),
		st.value.Render(m.machine.Boundary().String()),
		st.value.Render(m.machine.Phase().String()),
		st.value.Render(m.interval.String()),
		st.label.Render(fmt.Sprintf("(%d,%d)", m.cursorX, m.cursorY)),
	))
	s.WriteByte('\n')

	board := m.renderer.Render(&m.frame)
	if _, ok := m.renderer.(render.Blocks); ok {
		board = overlayCursor(board, m.cursorX, m.cursorY)
	}
	s.WriteString(st.board.Render(strings.TrimRight(board, "\n")))
	s.WriteByte('\n')

	if len(m.popHistory) > 1 {
		chartW := m.machine.Width()
		if chartW > 60 {
			chartW = 60
		}
		chart := asciigraph.Plot(m.popHistory,
			asciigraph.Height(m.chartH),
			asciigraph.Width(chartW),
			asciigraph.Caption("population"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.note != "" {
		s.WriteString(st.warn.Render(m.note) + "\n")
	}

	s.WriteString(st.help.Render("space:pause s:step r:randomize c:clear p:stamp b:renderer T:theme ?:help q:quit"))
	return s.String()
}

func overlayCursor(board string, x, y int) string {
	lines := strings.Split(board, "\n")
	if y < 0 || y >= len(lines) {
		return board
	}
	runes := []rune(lines[y])
	if x < 0 || x >= len(runes) {
		return board
	}
	runes[x] = '┼'
	lines[y] = string(runes)
	return strings.Join(lines, "\n")
}

const helpOverlay = `
╔══════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS            ║
╠══════════════════════════════════════════╣
║  Space      - Pause/Resume               ║
║  S          - Single step (pauses)       ║
║  R          - Randomize board            ║
║  C          - Clear board                ║
║  Arrows/HJKL- Move cursor                ║
║  Enter/T    - Toggle cell under cursor   ║
║  P          - Stamp next pattern         ║
║  +/-        - Faster/slower              ║
║  B          - Swap renderer              ║
║  Shift+T    - Cycle themes               ║
║  Mouse L/R  - Draw/erase cells           ║
║  ?          - Toggle this help           ║
║  Q/Esc      - Quit                       ║
╚══════════════════════════════════════════╝
`
