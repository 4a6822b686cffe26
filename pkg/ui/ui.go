/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ui.go
Description: Interactive terminal UI for Akaylee WordGen. Bubble Tea model with a
strategy picker, parameter prompts, and a scrollable results view showing generated
words with their model weights.
*/

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

type step int

const (
	stepPickMode step = iota
	stepCount
	stepExtra
	stepResults
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	weightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E9E6E"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type modeChoice struct {
	mode  interfaces.Mode
	label string
	extra string // prompt for the mode-specific parameter, "" = none
}

var modeChoices = []modeChoice{
	{interfaces.ModeRandom, "random - uniform draws from observed positions", ""},
	{interfaces.ModeSmart, "smart - frequency and co-occurrence weighted", ""},
	{interfaces.ModePattern, "pattern - type skeleton anchored (strictest)", "Type pattern (U/l/n/@, empty = sampled)"},
	{interfaces.ModeRegex, "regex - strings matching an expression", "Regular expression"},
	{interfaces.ModeMarkov, "markov - n-gram chain walk", "Chain order (empty = 2)"},
	{interfaces.ModeHybrid, "hybrid - weighted strategy mix", "Mix preset (balanced/strict/creative)"},
}

// Model implements the Bubble Tea generation UI. It owns an immutable
// trained model; every generation run builds a fresh generator.
type Model struct {
	analysis *models.AnalysisResult
	config   interfaces.GeneratorConfig

	step      step
	modeIndex int
	input     textinput.Model
	results   viewport.Model
	words     []*interfaces.GeneratedWord
	err       error

	width  int
	height int
	ready  bool
}

// NewModel constructs the UI over a trained model. The config supplies
// defaults (seed, duplicate policy) shared with the CLI.
func NewModel(analysis *models.AnalysisResult, config interfaces.GeneratorConfig) *Model {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 48
	return &Model{
		analysis: analysis,
		config:   config,
		input:    input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 4
		m.results = viewport.New(msg.Width, max(msg.Height-headerHeight, 1))
		m.ready = true
		if m.step == stepResults {
			m.results.SetContent(m.renderResults())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			return m.back()
		}
		switch m.step {
		case stepPickMode:
			return m.updatePicker(msg)
		case stepCount, stepExtra:
			return m.updateInput(msg)
		case stepResults:
			return m.updateResults(msg)
		}
	}

	if m.step == stepCount || m.step == stepExtra {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.modeIndex > 0 {
			m.modeIndex--
		}
	case "down", "j":
		if m.modeIndex < len(modeChoices)-1 {
			m.modeIndex++
		}
	case "enter":
		m.config.Mode = modeChoices[m.modeIndex].mode
		m.step = stepCount
		m.prompt("How many words? (empty = 10)")
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		value := strings.TrimSpace(m.input.Value())
		if m.step == stepCount {
			count := 10
			if value != "" {
				parsed, err := strconv.Atoi(value)
				if err != nil || parsed <= 0 {
					m.err = fmt.Errorf("count must be a positive integer")
					return m, nil
				}
				count = parsed
			}
			m.config.Count = count
			m.err = nil
			if modeChoices[m.modeIndex].extra != "" {
				m.step = stepExtra
				m.prompt(modeChoices[m.modeIndex].extra)
				return m, nil
			}
			return m.generate()
		}
		if err := m.applyExtra(value); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		return m.generate()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyExtra(value string) error {
	switch m.config.Mode {
	case interfaces.ModePattern:
		m.config.TypePattern = value
	case interfaces.ModeRegex:
		if value == "" {
			return fmt.Errorf("regex mode needs an expression")
		}
		m.config.Expression = value
	case interfaces.ModeMarkov:
		if value != "" {
			order, err := strconv.Atoi(value)
			if err != nil || order <= 0 {
				return fmt.Errorf("chain order must be a positive integer")
			}
			m.config.MarkovOrder = order
		}
	case interfaces.ModeHybrid:
		m.config.HybridPreset = value
	}
	return nil
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "g":
		return m.generate()
	case "b":
		return m.back()
	}
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *Model) back() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepPickMode:
		return m, tea.Quit
	case stepCount:
		m.step = stepPickMode
	case stepExtra:
		m.step = stepCount
		m.prompt("How many words? (empty = 10)")
	case stepResults:
		m.step = stepPickMode
	}
	m.err = nil
	return m, nil
}

func (m *Model) prompt(placeholder string) {
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Focus()
}

func (m *Model) generate() (tea.Model, tea.Cmd) {
	gen, err := generators.New(m.analysis, m.config)
	if err != nil {
		m.err = err
		return m, nil
	}
	words, err := gen.Generate(m.config.Count)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.words = words
	m.err = nil
	m.step = stepResults
	if m.ready {
		m.results.SetContent(m.renderResults())
		m.results.GotoTop()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Akaylee WordGen"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("model: %d words, lengths %d-%d, charset %d",
		m.analysis.TotalWords, m.analysis.MinLength, m.analysis.MaxLength, len(m.analysis.Charset))))
	b.WriteString("\n\n")

	switch m.step {
	case stepPickMode:
		for i, choice := range modeChoices {
			cursor := "  "
			line := choice.label
			if i == m.modeIndex {
				cursor = "> "
				line = selectedStyle.Render(line)
			} else {
				line = dimStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n" + footerStyle.Render("up/down select · enter confirm · q quit"))

	case stepCount, stepExtra:
		b.WriteString(m.input.View())
		b.WriteString("\n\n" + footerStyle.Render("enter confirm · esc back"))

	case stepResults:
		if m.ready {
			b.WriteString(m.results.View())
		} else {
			b.WriteString(m.renderResults())
		}
		b.WriteString("\n" + footerStyle.Render("g regenerate · b back · q quit"))
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.err.Error()))
	}
	return b.String()
}

func (m *Model) renderResults() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d words\n\n", m.config.Mode, len(m.words))
	for _, w := range m.words {
		b.WriteString(w.Word)
		if w.HasWeight {
			b.WriteString("  " + weightStyle.Render(fmt.Sprintf("%.3e", w.Weight)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Run starts the interactive UI over a trained model.
func Run(analysis *models.AnalysisResult, config interfaces.GeneratorConfig) error {
	program := tea.NewProgram(NewModel(analysis, config), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
