package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// MenuChoice is how the picker was left.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

const menuHint = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel picks a mode to play. It exits on the first decisive key.
type MenuModel struct {
	modes  []registry.GameInfo
	cursor int
	cfg    core.RuntimeConfig
	store  *storage.Store
	keys   *KeyMapper
	choice MenuChoice
}

func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		modes: registry.List(),
		cfg:   cfg,
		store: store,
		keys:  NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.choice = m.choose(m.keys.MapKeyToMenuAction(msg)); m.choice != ChoiceNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// choose applies a menu action, moving the cursor when it is not final.
func (m *MenuModel) choose(a MenuAction) MenuChoice {
	switch a {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.modes)-1, 0))
	case MenuActionSelect:
		if len(m.modes) > 0 {
			return ChoicePlay
		}
	case MenuActionScoreboard:
		return ChoiceScores
	case MenuActionQuit, MenuActionBack:
		return ChoiceQuit
	}
	return ChoiceNone
}

func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("  S H M U P  "),
		"",
		"Select a mode",
		"",
	}
	for i, mode := range m.modes {
		line := "  " + mode.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + mode.Title)
		}
		if m.store != nil {
			if best := m.store.HighScore(mode.ID); best > 0 {
				line += menuBestStyle.Render(fmt.Sprintf("  (best %d)", best))
			}
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", menuHint)

	for i, l := range lines {
		lines[i] = centerText(l, m.cfg.ScreenW)
	}
	return strings.Join(lines, "\n") + "\n"
}

// Choice reports how the menu was left, or ChoiceNone while it is open.
func (m MenuModel) Choice() MenuChoice { return m.choice }

// SelectedID is the mode under the cursor when the choice is ChoicePlay.
func (m MenuModel) SelectedID() string {
	if m.choice != ChoicePlay {
		return ""
	}
	return m.modes[m.cursor].ID
}

// Config is the runtime config with the last seen terminal size.
func (m MenuModel) Config() core.RuntimeConfig { return m.cfg }

// centerText left-pads text to center it in width printable cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what RunMenu hands back to the menu loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker until the user decides.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch m.Choice() {
	case ChoicePlay:
		res.GameID = m.SelectedID()
	case ChoiceScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res, nil
}
