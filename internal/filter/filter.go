package filter

import (
	"errors"
	"fmt"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/bzstats/internal/domain"
)

type Dimension string

const (
	General Dimension = "general"
	Player  Dimension = "player"
	Map     Dimension = "map"
	Faction Dimension = "faction"
)

const AllTime = "all"

var (
	ErrUnknownDimension = errors.New("unknown analysis dimension")
	ErrBadPeriod        = errors.New("time period must be \"all\" or a year")
)

func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(s); d {
	case General, Player, Map, Faction:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
}

// ParsePeriod returns 0 for "all" (or empty) and the year otherwise.
func ParsePeriod(s string) (int, error) {
	if s == "" || s == AllTime {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPeriod, s)
	}
	return year, nil
}

// Filter selects games by year and by one analysis dimension.
// Year 0 means all years.
type Filter struct {
	Year      int
	Dimension Dimension
	Value     string
}

// Apply returns the matching games in their original order. The input is
// never modified.
func (f Filter) Apply(games []domain.Game) []domain.Game {
	out := make([]domain.Game, 0, len(games))
	for i := range games {
		if f.Match(games[i]) {
			out = append(out, games[i])
		}
	}
	return out
}

func (f Filter) Match(g domain.Game) bool {
	if f.Year != 0 && g.Year != f.Year {
		return false
	}
	if f.Value == "" {
		return true
	}
	switch f.Dimension {
	case Player:
		return Participants(g).Contains(f.Value)
	case Map:
		return g.Map == f.Value
	case Faction:
		return g.Faction1 == f.Value || g.Faction2 == f.Value
	default:
		return true
	}
}

// Participants lists everyone recorded in a game: both commanders, both
// rosters and both straggler lists.
func Participants(g domain.Game) mapset.Set[string] {
	s := mapset.NewThreadUnsafeSet[string](g.Commander1, g.Commander2)
	for _, list := range [][]string{g.TeamOne, g.TeamTwo, g.TeamOneStraggler, g.TeamTwoStraggler} {
		for _, name := range list {
			s.Add(name)
		}
	}
	return s
}
