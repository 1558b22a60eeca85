// Package human implements a terminal-interactive Agent: a human types
// choices into a Bubble Tea program instead of a heuristic computing them
// (spec.md §1 "agent implementations (..., human, ...)"). Grounded on the
// teacher's internal/tui (TUIModel: a bubbletea.Program wrapping a
// viewport for the running log plus a focused input pane, driven by
// lipgloss styles) and internal/game.HumanAgent's promptFunc indirection,
// collapsed here into one Agent that owns its own Program.
package human

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dougwinr/vgcsim/internal/battle"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Agent prompts a human at the terminal for every Decide call, one
// Bubble Tea program run per decision so the rest of the battle loop can
// stay a synchronous Decide call (§5: the core never yields mid-step; the
// human agent is the one place that waits on real wall-clock input,
// entirely outside the engine's own synchronous Step).
type Agent struct {
	log []string // rolling battle log rendered above the action menu
}

func New() *Agent {
	return &Agent{}
}

// Log appends a line to the scrollback shown above the next prompt,
// typically fed from rendered Event Log entries (internal/battle/render.go).
func (a *Agent) Log(line string) {
	a.log = append(a.log, line)
}

func (a *Agent) Decide(obs battle.Observation, legal []battle.Choice) battle.Choice {
	if len(legal) == 0 {
		return battle.Choice{Kind: battle.ChoicePass}
	}
	if len(legal) == 1 {
		return legal[0]
	}

	m := newPromptModel(obs, legal, a.log)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return legal[0]
	}
	chosen := final.(promptModel).chosen
	if chosen < 0 || chosen >= len(legal) {
		return legal[0]
	}
	return legal[chosen]
}

type promptModel struct {
	obs      battle.Observation
	legal    []battle.Choice
	labels   []string
	cursor   int
	chosen   int
	logLines []string
	vp       viewport.Model
}

func newPromptModel(obs battle.Observation, legal []battle.Choice, log []string) promptModel {
	labels := make([]string, len(legal))
	for i, c := range legal {
		labels[i] = describeChoice(c)
	}
	vp := viewport.New(60, 8)
	vp.SetContent(strings.Join(log, "\n"))
	return promptModel{obs: obs, legal: legal, labels: labels, chosen: -1, logLines: log, vp: vp}
}

func describeChoice(c battle.Choice) string {
	switch c.Kind {
	case battle.ChoiceMove:
		return fmt.Sprintf("Move slot %d (target %d)", c.MoveSlot, c.Target)
	case battle.ChoiceSwitch:
		return fmt.Sprintf("Switch to team index %d", c.SwitchTo)
	default:
		return "Pass"
	}
}

func (m promptModel) Init() tea.Cmd { return nil }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.legal)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
		return m, tea.Quit
	case "ctrl+c", "q":
		m.chosen = -1
		return m, tea.Quit
	}
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your active Pokémon's legal actions"))
	b.WriteString("\n\n")
	for i, label := range m.labels {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(dimStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.vp.View()))
	return b.String()
}
