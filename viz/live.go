// Package viz renders a live terminal view of an advancing epidemic
// curve with interactive parameter adjustment.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/caiosainvallio/simulations/epidemic"
	"github.com/caiosainvallio/simulations/solver"
)

const (
	graphWidth      = 70
	graphHeight     = 12
	historyCapacity = 600
	stepsPerFrame   = 4
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Live is the bubbletea model driving the view. It advances the
// epidemic with fixed RK4 steps, one small batch per frame.
type Live struct {
	model   epidemic.Model
	stepper *solver.RK4

	params    epidemic.Params
	paramKeys []string
	selected  int

	state   epidemic.State
	initial epidemic.State
	t, dt   float64
	running bool
	err     error

	infIndex int
	history  []float64
}

func NewLive(m epidemic.Model, params epidemic.Params, initial epidemic.State, dt float64) Live {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	infIndex := 0
	for i, name := range m.Compartments() {
		if name == "I" {
			infIndex = i
			break
		}
	}

	return Live{
		model:     m,
		stepper:   solver.NewRK4(),
		params:    params.Clone(),
		paramKeys: keys,
		state:     initial.Clone(),
		initial:   initial.Clone(),
		dt:        dt,
		running:   true,
		infIndex:  infIndex,
		history:   make([]float64, 0, historyCapacity),
	}
}

func (l Live) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		case "r":
			l.state = l.initial.Clone()
			l.t = 0
			l.history = l.history[:0]
			l.err = nil
			l.running = true
		case "tab":
			if len(l.paramKeys) > 0 {
				l.selected = (l.selected + 1) % len(l.paramKeys)
			}
		case "up", "k":
			l.adjustParam(1.05)
		case "down", "j":
			l.adjustParam(0.95)
		}
	case TickMsg:
		if l.running && l.err == nil {
			l.step()
		}
		return l, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return l, nil
}

func (l *Live) adjustParam(factor float64) {
	if len(l.paramKeys) == 0 {
		return
	}
	key := l.paramKeys[l.selected]
	v := l.params[key] * factor
	if v == 0 {
		v = 1e-6
	}
	l.params[key] = v
}

func (l *Live) step() {
	for i := 0; i < stepsPerFrame; i++ {
		next, err := l.stepper.Step(l.model, l.t, l.state, l.params, l.dt)
		if err != nil {
			l.err = err
			l.running = false
			return
		}
		l.state = next
		l.t += l.dt
	}
	l.history = append(l.history, l.state[l.infIndex])
	if len(l.history) > historyCapacity {
		l.history = l.history[len(l.history)-historyCapacity:]
	}
}

func (l Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  t=%.1f", l.model.Name(), l.t)))
	b.WriteString("\n")

	if len(l.history) > 1 {
		graph := asciigraph.Plot(l.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("infectious fraction"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	for i, name := range l.model.Compartments() {
		b.WriteString(labelStyle.Render(name))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", l.state[i])))
		b.WriteString("\n")
	}

	if r0, err := l.model.R0(l.params); err == nil {
		b.WriteString(labelStyle.Render("R0"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", r0)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Rt"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", r0*l.state[0])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, key := range l.paramKeys {
		line := fmt.Sprintf("%s = %.4f", key, l.params[key])
		if i == l.selected {
			b.WriteString(activeParamStyle.Render("> " + line))
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if l.err != nil {
		b.WriteString(errorStyle.Render(l.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · tab select param · up/down adjust · q quit"))
	return b.String()
}

// Run launches the live view and blocks until the user quits.
func Run(m epidemic.Model, params epidemic.Params, initial epidemic.State, dt float64) error {
	program := tea.NewProgram(NewLive(m, params, initial, dt))
	_, err := program.Run()
	return err
}
