package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceControls
	ChoiceQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceControls:
		return "Controls"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceControls, ChoiceQuit}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor       int
	presetCursor int
	best         int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	showControls bool
	quitting     bool
	selected     MenuChoice
}

// NewMenuModel creates a new menu model. The preset selector starts at
// preset, or at normal when preset is empty.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) MenuModel {
	presetCursor := 1
	for i, p := range config.Presets {
		if p == preset {
			presetCursor = i
		}
	}

	return MenuModel{
		presetCursor: presetCursor,
		best:         best,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showControls {
		m.showControls = false
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.presetCursor = (m.presetCursor + len(config.Presets) - 1) % len(config.Presets)

	case MenuActionRight:
		m.presetCursor = (m.presetCursor + 1) % len(config.Presets)

	case MenuActionSelect:
		choice := menuChoices[m.cursor]
		switch choice {
		case ChoiceControls:
			m.showControls = true
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = choice
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("N E O N   D O D G E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	b.WriteString("\n\n")

	if m.showControls {
		for _, line := range strings.Split(dodger.ControlsText, "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render("Press any key"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, choice := range menuChoices {
		line := "  " + choice.String()
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + choice.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Preset()), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Preset returns the difficulty preset under the selector.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.presetCursor]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
