package domain

type CommanderStat struct {
	Name  string
	Wins  int
	Total int

	WinRate             float64
	WilsonScore         float64
	BayesianScore       float64
	VolumeWeightedScore float64
	CompositeScore      float64
	VolumePercentage    float64

	EloRating     float64
	Glicko2Rating Glicko2Rating

	// Score is the value of the ranking method the list was sorted by.
	Score float64
	Rank  int
}

type Glicko2Rating struct {
	Rating    float64
	Deviation float64
	Interval  Interval
}

type Interval struct {
	Min float64
	Max float64
}

func (s CommanderStat) Losses() int {
	return s.Total - s.Wins
}
