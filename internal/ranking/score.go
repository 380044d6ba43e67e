package ranking

import "math"

const (
	// z for a 95% confidence interval.
	z = 1.96

	priorWins  = 5.0
	priorGames = 10.0

	compositeSkillWeight  = 0.7
	compositeVolumeWeight = 0.3
)

// WilsonLowerBound is the lower end of the Wilson score interval for the
// true win probability, as a fraction.
func WilsonLowerBound(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	n := float64(total)
	p := float64(wins) / n
	z2 := z * z
	return (p + z2/(2*n) - z*math.Sqrt((p*(1-p)+z2/(4*n))/n)) / (1 + z2/n)
}

// BayesianAverage shrinks the win rate toward 50% with ten pseudo-games.
func BayesianAverage(wins, total int) float64 {
	return (float64(wins) + priorWins) / (float64(total) + priorGames)
}

// CompositeScore blends win rate with a log volume ratio against the most
// active commander.
func CompositeScore(winRate float64, total, maxGames int) float64 {
	volume := 0.0
	if maxGames > 0 {
		volume = math.Log(float64(total)+1) / math.Log(float64(maxGames)+1)
	}
	return compositeSkillWeight*winRate + compositeVolumeWeight*volume
}
