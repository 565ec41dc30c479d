// Package viz provides a terminal live view of a running simulation.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/neurosim/internal/nmm"
)

const historyCapacity = 300

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a simulation in the foreground and plots the mean
// excitatory activation and firing rate across regions.
type Model struct {
	model   nmm.Model
	coupler nmm.Coupler
	stepper nmm.Stepper

	state    nmm.Matrix
	coupling nmm.Matrix
	deriv    nmm.Matrix
	obs      nmm.Matrix

	t            float64
	dt           float64
	stepsPerTick int
	running      bool

	seHistory   []float64
	rateHistory []float64
}

func NewModel(m nmm.Model, cpl nmm.Coupler, stepper nmm.Stepper, nRegions int, dt float64) Model {
	return Model{
		model:        m,
		coupler:      cpl,
		stepper:      stepper,
		state:        m.InitialState(nRegions),
		coupling:     nmm.NewMatrix(len(m.CouplingVars()), nRegions),
		deriv:        nmm.NewMatrix(m.NumStateVars(), nRegions),
		obs:          m.InitialObserved(nRegions),
		dt:           dt,
		stepsPerTick: 200,
		running:      true,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.stepsPerTick; i++ {
				m.stepper.Step(m.model, m.coupler, m.state, m.coupling, m.deriv, m.obs, m.dt)
				m.t += m.dt
			}
			m.seHistory = appendCapped(m.seHistory, mean(m.state[0]))
			m.rateHistory = appendCapped(m.rateHistory, mean(m.obs[1]))
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("neurosim live — %s", m.model.Name())))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.1f ms", m.t)) + "\n")
	b.WriteString(labelStyle.Render("mean S_e") + valueStyle.Render(fmt.Sprintf("%.4f", mean(m.state[0]))) + "\n")
	b.WriteString(labelStyle.Render("mean rate") + valueStyle.Render(fmt.Sprintf("%.2f Hz", mean(m.obs[1]))) + "\n")

	if len(m.rateHistory) > 1 {
		graph := asciigraph.Plot(m.rateHistory, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("mean excitatory rate [Hz]"))
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space: pause/resume  q: quit"))
	return b.String()
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[len(h)-historyCapacity:]
	}
	return h
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}
