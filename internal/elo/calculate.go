package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const (
	InitialRating = 1000.0

	provisionalGames = 30
	masterRating     = 2400.0
)

// Expected returns the expected score of a player rated ra against rb.
func Expected(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// Calculate returns the new rating of player A.
// K - coefficient, see KFactor.
// sa - points: 1 for win; 0.5 for draw; 0 for lose.
func Calculate(ra, rb, k float64, sa Points) float64 {
	return ra + k*(float64(sa)-Expected(ra, rb))
}

// KFactor is 40 for the first 30 games, 10 for ratings of 2400 and above,
// and 20 otherwise.
func KFactor(gamesPlayed int, rating float64) float64 {
	if gamesPlayed < provisionalGames {
		return 40
	}
	if rating >= masterRating {
		return 10
	}
	return 20
}

// Table keeps running ratings for a sequence of one-on-one results.
type Table struct {
	ratings map[string]float64
	games   map[string]int
}

func NewTable() *Table {
	return &Table{
		ratings: make(map[string]float64),
		games:   make(map[string]int),
	}
}

func (t *Table) Rating(name string) float64 {
	r, ok := t.ratings[name]
	if !ok {
		return InitialRating
	}
	return r
}

// Record applies one decided game between winner and loser.
func (t *Table) Record(winner, loser string) {
	rw, rl := t.Rating(winner), t.Rating(loser)
	kw := KFactor(t.games[winner], rw)
	kl := KFactor(t.games[loser], rl)
	t.ratings[winner] = Calculate(rw, rl, kw, Win)
	t.ratings[loser] = Calculate(rl, rw, kl, Lose)
	t.games[winner]++
	t.games[loser]++
}
