// Package ranking orders commanders by competing win-rate estimators.
package ranking

import (
	"sort"

	"github.com/goserg/bzstats/internal/domain"
)

// Tally counts one observation per commander per game, in order of first
// appearance.
func Tally(games []domain.Game) []domain.CommanderStat {
	index := make(map[string]int)
	var stats []domain.CommanderStat
	for i := range games {
		for _, name := range games[i].Commanders() {
			idx, ok := index[name]
			if !ok {
				idx = len(stats)
				index[name] = idx
				stats = append(stats, domain.CommanderStat{Name: name})
			}
			stats[idx].Total++
			if name == games[i].Winner {
				stats[idx].Wins++
			}
		}
	}
	return stats
}

// Rank returns the qualifying commanders sorted by the method's score,
// highest first. Ties keep first-appearance order.
func Rank(games []domain.Game, method Method, threshold MinGames) []domain.CommanderStat {
	minGames := threshold.Resolve(len(games))
	var qualified []domain.CommanderStat
	for _, s := range Tally(games) {
		if s.Total >= minGames {
			qualified = append(qualified, s)
		}
	}
	if len(qualified) == 0 {
		return nil
	}

	sumGames, maxGames := 0, 0
	for _, s := range qualified {
		sumGames += s.Total
		maxGames = max(maxGames, s.Total)
	}

	var elo map[string]float64
	var glicko map[string]domain.Glicko2Rating
	switch method {
	case Elo:
		elo = EloRatings(games)
	case Glicko2:
		glicko = Glicko2Ratings(games)
	}

	for i := range qualified {
		s := &qualified[i]
		p := float64(s.Wins) / float64(s.Total)
		volumeShare := float64(s.Total) / float64(sumGames)

		s.WinRate = p * 100
		s.WilsonScore = WilsonLowerBound(s.Wins, s.Total) * 100
		s.BayesianScore = BayesianAverage(s.Wins, s.Total) * 100
		s.VolumeWeightedScore = p * volumeShare * 100
		s.CompositeScore = CompositeScore(p, s.Total, maxGames) * 100
		s.VolumePercentage = volumeShare * 100
		if elo != nil {
			s.EloRating = elo[s.Name]
		}
		if glicko != nil {
			s.Glicko2Rating = glicko[s.Name]
		}
		s.Score = score(*s, method)
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Score > qualified[j].Score
	})
	for i := range qualified {
		qualified[i].Rank = i + 1
	}
	return qualified
}

func score(s domain.CommanderStat, method Method) float64 {
	switch method {
	case WinRate:
		return s.WinRate
	case Bayesian:
		return s.BayesianScore
	case Volume:
		return s.VolumeWeightedScore
	case Composite:
		return s.CompositeScore
	case Elo:
		return s.EloRating
	case Glicko2:
		return s.Glicko2Rating.Rating
	default:
		return s.WilsonScore
	}
}
