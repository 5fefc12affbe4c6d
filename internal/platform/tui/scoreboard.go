package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// maxRuns is how many runs of a variant the scoreboard loads.
const maxRuns = 100

// ownRunMark flags the viewing player's runs in the rank column.
const ownRunMark = "*"

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type scoreboardKeys struct {
	Scroll  key.Binding
	Variant key.Binding
	Mine    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Variant, k.Mine, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Variant: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab", "variant")),
		Mine:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my runs")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs of each registered variant.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store
	player    string
	onlyMine  bool
	runs      []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      scoreboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for player. The player's own runs
// are marked and can be shown alone; an empty player disables both.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		player:   player,
		help:     help.New(),
		keys:     newScoreboardKeys(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	player := 14
	// Wide terminals give the spare room to player names
	if spare := m.width - 60; spare > 0 {
		player += min(spare, 16)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 8},
			{Title: "Wave", Width: 5},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// variantID returns the id of the selected variant, or "" with none registered.
func (m ScoreboardModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// reload reads the selected variant's runs and stats from the store.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if id := m.variantID(); m.store != nil && id != "" {
		if runs, err := m.store.TopScores(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

// fillTable builds rows from the loaded runs. Ranks stay those of the full
// list when only the player's runs are shown.
func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		mine := m.player != "" && r.Player == m.player
		if m.onlyMine && !mine {
			continue
		}
		rank := "#" + strconv.Itoa(i+1)
		if mine {
			rank += ownRunMark
		}
		rows = append(rows, table.Row{
			rank,
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Wave),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			if n := len(m.variants); n > 0 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" {
					step = n - 1
				}
				m.current = (m.current + step) % n
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Mine):
			if m.player != "" {
				m.onlyMine = !m.onlyMine
				m.fillTable()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.body())
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(boardDimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(v.Title)
		} else {
			tabs[i] = boardTabStyle.Render(v.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.onlyMine {
		line += boardDimStyle.Render("  runs by " + m.player)
	}
	return line
}

func (m ScoreboardModel) body() string {
	var msg string
	switch {
	case m.store == nil:
		msg = "Scores are not being recorded."
	case len(m.table.Rows()) == 0 && m.onlyMine:
		msg = fmt.Sprintf("No runs by %s yet.", m.player)
	case len(m.table.Rows()) == 0:
		msg = "No runs recorded yet.\nClear a few rocks to get on the board!"
	}
	if msg != "" {
		return m.centerBlock(boardDimStyle.Italic(true).Padding(1, 4).Render(msg))
	}
	return m.centerBlock(m.table.View())
}

// centerBlock frames a multi-line block and centers every line of it.
func (m ScoreboardModel) centerBlock(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(s))
}

// statsLine summarizes the selected variant's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  |  best wave %d  |  average %.0f  |  last played %s",
		m.stats.GamesCount, m.stats.BestWave, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
