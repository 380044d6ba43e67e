// Package roles annotates games with the part one player took in them.
package roles

import (
	"slices"

	"github.com/goserg/bzstats/internal/domain"
)

// Classify returns one view per game. Precedence for role and team is
// commander1, commander2, teamOne, teamTwo. Straggler status is checked
// separately and only fills the team when nothing else matched.
func Classify(games []domain.Game, player string) []domain.PlayerGame {
	views := make([]domain.PlayerGame, 0, len(games))
	for i := range games {
		views = append(views, ClassifyGame(games[i], player))
	}
	return views
}

func ClassifyGame(g domain.Game, player string) domain.PlayerGame {
	v := domain.PlayerGame{
		Game:   g,
		Player: player,
		Role:   domain.RoleTeammate,
		Team:   domain.TeamNone,
	}
	switch {
	case player == g.Commander1:
		v.Role, v.Team, v.TeamWon = domain.RoleCommander, domain.TeamOne, g.Winner == g.Commander1
	case player == g.Commander2:
		v.Role, v.Team, v.TeamWon = domain.RoleCommander, domain.TeamTwo, g.Winner == g.Commander2
	case slices.Contains(g.TeamOne, player):
		v.Team, v.TeamWon = domain.TeamOne, g.Winner == g.Commander1
	case slices.Contains(g.TeamTwo, player):
		v.Team, v.TeamWon = domain.TeamTwo, g.Winner == g.Commander2
	}

	inOne := slices.Contains(g.TeamOneStraggler, player)
	inTwo := slices.Contains(g.TeamTwoStraggler, player)
	v.IsStraggler = inOne || inTwo
	if v.Team == domain.TeamNone {
		switch {
		case inOne:
			v.Team = domain.TeamOne
		case inTwo:
			v.Team = domain.TeamTwo
		}
	}
	return v
}

// Breakdown counts games and wins per role for one player.
type Breakdown struct {
	Games int
	Wins  int

	CommanderGames int
	CommanderWins  int
	ThugGames      int
	ThugWins       int
	StragglerGames int
	StragglerWins  int
}

func Summarize(views []domain.PlayerGame) Breakdown {
	var b Breakdown
	for _, v := range views {
		b.Games++
		if v.TeamWon {
			b.Wins++
		}
		switch {
		case v.Role == domain.RoleCommander:
			b.CommanderGames++
			if v.TeamWon {
				b.CommanderWins++
			}
		case v.IsThug():
			b.ThugGames++
			if v.TeamWon {
				b.ThugWins++
			}
		}
		if v.IsStraggler {
			b.StragglerGames++
			if v.TeamWon {
				b.StragglerWins++
			}
		}
	}
	return b
}

// WinRate returns wins/games as a percentage, 0 when there are no games.
func WinRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}
