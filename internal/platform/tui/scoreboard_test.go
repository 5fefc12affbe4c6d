package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func scoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Run{
		{GameID: "stub", Player: "ada", Score: 900, Wave: 3},
		{GameID: "stub", Player: "bob", Score: 1200, Wave: 4},
		{GameID: "stub", Player: "ada", Score: 300, Wave: 1},
		{GameID: "other", Player: "bob", Score: 50, Wave: 1},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}
	return store
}

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sb
}

func TestScoreboardRanksAndMarksOwnRuns(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), "ada", 100, 30)

	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "bob", rows[0][1])
	assert.Equal(t, "#2"+ownRunMark, rows[1][0])
	assert.Equal(t, "4", rows[0][3])

	require.NotNil(t, m.stats)
	assert.Contains(t, m.statsLine(), "3 runs")
	assert.Contains(t, m.statsLine(), "best wave 4")
}

func TestScoreboardOnlyMine(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), "ada", 100, 30)

	m = scoreboardUpdate(t, m, keyMsg("m"))
	rows := m.table.Rows()
	require.Len(t, rows, 2)
	// Ranks are those of the whole board
	assert.Equal(t, "#2"+ownRunMark, rows[0][0])
	assert.Equal(t, "#3"+ownRunMark, rows[1][0])
	assert.Contains(t, stripANSI(m.View()), "runs by ada")

	m = scoreboardUpdate(t, m, keyMsg("m"))
	assert.Len(t, m.table.Rows(), 3)
}

func TestScoreboardOnlyMineNeedsPlayer(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), "", 100, 30)

	m = scoreboardUpdate(t, m, keyMsg("m"))
	assert.False(t, m.onlyMine)
	for _, row := range m.table.Rows() {
		assert.NotContains(t, row[0], ownRunMark)
	}
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), "bob", 100, 30)
	m.variants = []registry.GameInfo{{ID: "stub", Title: "Stub"}, {ID: "other", Title: "Other"}}

	m = scoreboardUpdate(t, m, keyMsg("tab"))
	assert.Equal(t, "other", m.variantID())
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "50", m.table.Rows()[0][2])

	m = scoreboardUpdate(t, m, keyMsg("left"))
	assert.Equal(t, "stub", m.variantID())
	assert.Len(t, m.table.Rows(), 3)
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "ada", 80, 24)

	assert.Empty(t, m.table.Rows())
	assert.Empty(t, m.statsLine())
	assert.Contains(t, stripANSI(m.View()), "Scores are not being recorded.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	back := scoreboardUpdate(t, m, keyMsg("esc"))
	assert.True(t, back.IsGoingBack())
	assert.Empty(t, back.View())

	quit := scoreboardUpdate(t, m, keyMsg("q"))
	assert.True(t, quit.IsQuitting())
}
