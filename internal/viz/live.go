package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/seismic"
)

const (
	defaultCols     = 60
	defaultRows     = 20
	historyCapacity = 600
	maxStepsPerTick = 200
	statsWidth      = 42
	wavefrontLevel  = 0.1
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// LiveModel steps a simulation inside the Bubble Tea loop and draws the
// wavefield after every frame.
type LiveModel struct {
	sim           *seismic.Simulator
	params        seismic.Params
	receivers     []seismic.Receiver
	energy        *metrics.Energy
	peak          *metrics.PeakAmplitude
	stepsPerFrame int
	running       bool
	wavefront     bool
	cols, rows    int
	energyHistory []float64
}

// NewLiveModel validates p and prepares a simulator at the post-injection
// state. stepsPerFrame below 1 is treated as 1.
func NewLiveModel(p seismic.Params, receivers []seismic.Receiver, stepsPerFrame int) (LiveModel, error) {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	m := LiveModel{
		sim:           seismic.New(),
		params:        p,
		receivers:     receivers,
		energy:        metrics.NewEnergy(),
		peak:          metrics.NewPeakAmplitude(),
		stepsPerFrame: stepsPerFrame,
		running:       true,
		cols:          defaultCols,
		rows:          defaultRows,
	}
	m.sim.AddMetric(m.energy)
	m.sim.AddMetric(m.peak)
	for _, r := range receivers {
		m.sim.AddReceiver(r)
	}
	if err := m.reset(); err != nil {
		return LiveModel{}, err
	}
	return m, nil
}

func (m LiveModel) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			// Params were validated when the model was built.
			_ = m.reset()
			m.running = true
		case "+", "=":
			m.stepsPerFrame = minInt(m.stepsPerFrame*2, maxStepsPerTick)
		case "-", "_":
			m.stepsPerFrame = maxInt(m.stepsPerFrame/2, 1)
		case "w":
			m.wavefront = !m.wavefront
		case "t":
			NextTheme()
		}
	case tea.WindowSizeMsg:
		m.cols = maxInt(msg.Width-statsWidth-6, 10)
		m.rows = maxInt(msg.Height-4, 5)
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

func (m *LiveModel) reset() error {
	if err := m.sim.Reset(m.params); err != nil {
		return err
	}
	m.energyHistory = m.energyHistory[:0]
	m.energyHistory = append(m.energyHistory, m.energy.Value())
	return nil
}

// advance runs up to stepsPerFrame steps without going past nt-1.
func (m *LiveModel) advance() {
	for i := 0; i < m.stepsPerFrame && !m.Done(); i++ {
		m.sim.Step()
	}
	m.energyHistory = append(m.energyHistory, m.energy.Value())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[len(m.energyHistory)-historyCapacity:]
	}
	if m.Done() {
		m.running = false
	}
}

// Done reports whether all nt-1 steps have been taken.
func (m LiveModel) Done() bool {
	return m.sim.StepsTaken() >= m.params.NT-1
}

// Simulator exposes the stepped simulator.
func (m LiveModel) Simulator() *seismic.Simulator { return m.sim }

func (m LiveModel) status() string {
	switch {
	case m.Done():
		return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Render("FINISHED")
	case m.running:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render("RUNNING")
	default:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Warning).Render("PAUSED")
	}
}

func (m LiveModel) field() string {
	g := m.sim.Grid()
	if m.wavefront {
		c := Wavefront(g, m.cols, m.rows, wavefrontLevel)
		c.Frame()
		return lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Render(c.String())
	}
	return Heatmap(g, m.cols, m.rows, 0)
}

// View renders the wavefield next to a stats panel.
func (m LiveModel) View() string {
	p := m.params
	row := func(label, value string) string {
		return labelStyle().Render(label) + valueStyle().Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(headerStyle().Render("SYNTHETIC EARTHQUAKE") + "\n")
	s.WriteString(m.status() + "\n\n")

	total := maxInt(p.NT-1, 1)
	progress := float64(m.sim.StepsTaken()) / float64(total)
	s.WriteString(ProgressBar(progress, 24) + fmt.Sprintf(" %d/%d\n\n", m.sim.StepsTaken(), p.NT-1))

	s.WriteString(row("Time", fmt.Sprintf("%.4fs", m.sim.Time())))
	s.WriteString(row("Scheme", p.Scheme.String()))
	s.WriteString(row("Grid", fmt.Sprintf("%dx%d", p.NZ, p.NX)))
	s.WriteString(row("Steps/frame", fmt.Sprintf("%d", m.stepsPerFrame)))
	s.WriteString(row("max|u|", fmt.Sprintf("%.4g", m.sim.Grid().MaxAbs())))
	s.WriteString(row("Peak", fmt.Sprintf("%.4g", m.peak.Value())))
	s.WriteString(row("Energy", fmt.Sprintf("%.4g", m.energy.Value())))
	s.WriteString(Sparkline(m.energyHistory, 30) + "\n")

	if traces := m.sim.Traces(); len(traces) > 0 && len(traces[0].Samples) > 1 {
		s.WriteString("\n" + TracePlot(traces[0], 30, 5) + "\n")
	}

	s.WriteString(helpStyle().Render("SP:Pause R:Restart Q:Quit\n+/-:Speed W:Wavefront T:Theme"))

	var left string
	if m.wavefront {
		left = m.field()
	} else {
		limit := m.sim.Grid().MaxAbs()
		left = m.field() + "\n" + ColorBar(minInt(m.cols, 40), limit)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle().Render(left),
		panelStyle().Width(statsWidth).Render(s.String()),
	)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
