package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goserg/bzstats/internal/domain"
)

func TestClassifyGame(t *testing.T) {
	game := domain.Game{
		Commander1:       "Alice",
		Commander2:       "Bob",
		Winner:           "Bob",
		TeamOne:          []string{"Carol", "Dan"},
		TeamTwo:          []string{"Eve"},
		TeamOneStraggler: []string{"Dan", "Frank"},
		TeamTwoStraggler: []string{"Gina"},
	}
	tests := []struct {
		player    string
		role      domain.Role
		team      domain.Team
		straggler bool
		won       bool
		thug      bool
	}{
		{player: "Alice", role: domain.RoleCommander, team: domain.TeamOne},
		{player: "Bob", role: domain.RoleCommander, team: domain.TeamTwo, won: true},
		{player: "Carol", role: domain.RoleTeammate, team: domain.TeamOne, thug: true},
		{player: "Eve", role: domain.RoleTeammate, team: domain.TeamTwo, won: true, thug: true},
		// both roster member and straggler: flags are not exclusive.
		{player: "Dan", role: domain.RoleTeammate, team: domain.TeamOne, straggler: true},
		// straggler only: team back-filled, win flag stays false.
		{player: "Frank", role: domain.RoleTeammate, team: domain.TeamOne, straggler: true},
		{player: "Gina", role: domain.RoleTeammate, team: domain.TeamTwo, straggler: true},
		{player: "Nobody", role: domain.RoleTeammate, team: domain.TeamNone, thug: true},
	}
	for _, tt := range tests {
		t.Run(tt.player, func(t *testing.T) {
			v := ClassifyGame(game, tt.player)
			assert.Equal(t, tt.role, v.Role)
			assert.Equal(t, tt.team, v.Team)
			assert.Equal(t, tt.straggler, v.IsStraggler)
			assert.Equal(t, tt.won, v.TeamWon)
			assert.Equal(t, tt.thug, v.IsThug())
		})
	}
}

func TestClassifyCommanderPrecedence(t *testing.T) {
	g := domain.Game{Commander1: "Alice", Commander2: "Bob", Winner: "Alice", TeamTwo: []string{"Alice"}}
	v := ClassifyGame(g, "Alice")
	assert.Equal(t, domain.RoleCommander, v.Role)
	assert.Equal(t, domain.TeamOne, v.Team)
	assert.True(t, v.TeamWon)
}

func TestSummarize(t *testing.T) {
	games := []domain.Game{
		{Commander1: "Alice", Commander2: "Bob", Winner: "Alice"},
		{Commander1: "Bob", Commander2: "Carol", Winner: "Bob", TeamTwo: []string{"Alice"}},
		{Commander1: "Bob", Commander2: "Carol", Winner: "Carol", TeamTwo: []string{"Alice"}, TeamTwoStraggler: []string{"Alice"}},
	}
	b := Summarize(Classify(games, "Alice"))
	assert.Equal(t, Breakdown{
		Games:          3,
		Wins:           2,
		CommanderGames: 1,
		CommanderWins:  1,
		ThugGames:      1,
		ThugWins:       0,
		StragglerGames: 1,
		StragglerWins:  1,
	}, b)
	assert.InDelta(t, 66.666, WinRate(b.Wins, b.Games), 0.01)
	assert.Zero(t, WinRate(0, 0))
}
