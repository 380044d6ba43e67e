package ranking

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Method string

const (
	WinRate   Method = "winrate"
	Wilson    Method = "wilson"
	Bayesian  Method = "bayesian"
	Volume    Method = "volume"
	Composite Method = "composite"
	Elo       Method = "elo"
	Glicko2   Method = "glicko2"
)

var (
	ErrUnknownMethod = errors.New("unknown ranking method")
	ErrBadMinGames   = errors.New(`minimum games must be a count ("10") or a percentage ("3%")`)
)

func Methods() []Method {
	return []Method{Wilson, Bayesian, Composite, Volume, WinRate, Elo, Glicko2}
}

func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

func (m Method) Label() string {
	switch m {
	case WinRate:
		return "Win rate (%)"
	case Wilson:
		return "Wilson lower bound (%)"
	case Bayesian:
		return "Bayesian average (%)"
	case Volume:
		return "Volume-weighted score"
	case Composite:
		return "Composite score (%)"
	case Elo:
		return "Elo rating"
	case Glicko2:
		return "Glicko-2 rating"
	default:
		return string(m)
	}
}

// Bounded reports whether scores of the method live on a 0-100 scale.
func (m Method) Bounded() bool {
	switch m {
	case Volume, Elo, Glicko2:
		return false
	default:
		return true
	}
}

const minPercentFloor = 5

// MinGames is the participation threshold a commander has to reach.
type MinGames struct {
	Percent   float64
	Count     int
	IsPercent bool
}

// ParseMinGames reads "3%" as a share of all games and "10" as a literal
// game count. Counts below 1 are raised to 1.
func ParseMinGames(s string) (MinGames, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return MinGames{}, fmt.Errorf("%w: %q", ErrBadMinGames, s)
		}
		return MinGames{Percent: p, IsPercent: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return MinGames{}, fmt.Errorf("%w: %q", ErrBadMinGames, s)
	}
	return MinGames{Count: max(n, 1)}, nil
}

// Resolve turns the threshold into a game count for a set of totalGames.
func (m MinGames) Resolve(totalGames int) int {
	if !m.IsPercent {
		return m.Count
	}
	return max(minPercentFloor, int(math.Ceil(float64(totalGames)*m.Percent/100)))
}

func (m MinGames) String() string {
	if m.IsPercent {
		return strconv.FormatFloat(m.Percent, 'f', -1, 64) + "%"
	}
	return strconv.Itoa(m.Count)
}
