package domain

import "strconv"

type Role string

const (
	RoleCommander Role = "commander"
	RoleTeammate  Role = "teammate"
)

type Team int

const (
	TeamNone Team = 0
	TeamOne  Team = 1
	TeamTwo  Team = 2
)

// PlayerGame is a Game seen from one named player.
type PlayerGame struct {
	Game
	Player      string
	Role        Role
	Team        Team
	IsStraggler bool
	TeamWon     bool
}

// IsThug reports a regular teammate: not the commander and not a straggler.
func (p PlayerGame) IsThug() bool {
	return p.Role == RoleTeammate && !p.IsStraggler
}

func MonthKey(year int, month string) string {
	return strconv.Itoa(year) + "-" + month
}
