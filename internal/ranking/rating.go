package ranking

import (
	glicko "github.com/zelenin/go-glicko2"

	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/elo"
)

const (
	glickoRating     = 1500
	glickoDeviation  = 350
	glickoVolatility = 0.06
)

// EloRatings replays the games in order and returns every commander's
// final Elo rating.
func EloRatings(games []domain.Game) map[string]float64 {
	table := elo.NewTable()
	for i := range games {
		table.Record(games[i].Winner, games[i].Loser)
	}
	ratings := make(map[string]float64)
	for i := range games {
		for _, name := range games[i].Commanders() {
			ratings[name] = table.Rating(name)
		}
	}
	return ratings
}

// Glicko2Ratings treats every calendar month as one rating period.
func Glicko2Ratings(games []domain.Game) map[string]domain.Glicko2Rating {
	players := make(map[string]*glicko.Player)
	var order []string
	player := func(name string) *glicko.Player {
		p, ok := players[name]
		if !ok {
			p = glicko.NewPlayer(glicko.NewRating(glickoRating, glickoDeviation, glickoVolatility))
			players[name] = p
			order = append(order, name)
		}
		return p
	}

	var period *glicko.RatingPeriod
	var inPeriod map[string]bool
	periodKey := ""
	join := func(name string) *glicko.Player {
		p := player(name)
		if !inPeriod[name] {
			period.AddPlayer(p)
			inPeriod[name] = true
		}
		return p
	}
	flush := func() {
		if period != nil {
			period.Calculate()
		}
	}
	for i := range games {
		g := games[i]
		if key := g.MonthKey(); period == nil || key != periodKey {
			flush()
			period = glicko.NewRatingPeriod()
			inPeriod = make(map[string]bool, len(order))
			periodKey = key
			// Idle commanders still take part so their deviation grows.
			for _, name := range order {
				join(name)
			}
		}
		winner, loser := join(g.Winner), join(g.Loser)
		period.AddMatch(winner, loser, glicko.MATCH_RESULT_WIN)
	}
	flush()

	ratings := make(map[string]domain.Glicko2Rating, len(players))
	for name, p := range players {
		r := p.Rating()
		ratings[name] = domain.Glicko2Rating{
			Rating:    r.R(),
			Deviation: r.Rd(),
			Interval: domain.Interval{
				Min: r.R() - 2*r.Rd(),
				Max: r.R() + 2*r.Rd(),
			},
		}
	}
	return ratings
}
