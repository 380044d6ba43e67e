package domain

// RawGame is one leaf record of the source document. Optional fields carry
// an explicit presence flag.
type RawGame struct {
	Commanders     string
	Factions       []string
	Winner         string
	WinningFaction string
	Map            string

	Time    string
	HasTime bool

	TeamOne             []string
	HasTeamOne          bool
	TeamTwo             []string
	HasTeamTwo          bool
	TeamOneStraggler    []string
	HasTeamOneStraggler bool
	TeamTwoStraggler    []string
	HasTeamTwoStraggler bool

	// Extra holds leaf keys the normalizer does not interpret, as raw JSON.
	Extra map[string]string
}

// Game is the flat canonical record built once per load and never mutated.
type Game struct {
	Year  int
	Month string
	Day   string
	Map   string

	Commander1 string
	Commander2 string
	Faction1   string
	Faction2   string

	WinnerIndex    int
	Winner         string
	Loser          string
	WinningFaction string
	LosingFaction  string

	TeamOneSize    int
	TeamTwoSize    int
	TotalPlayers   int
	HasStraggler   bool
	StragglerCount int

	Time    string
	HasTime bool

	TeamOne          []string
	TeamTwo          []string
	TeamOneStraggler []string
	TeamTwoStraggler []string

	Extra map[string]string
}

func (g Game) Commanders() [2]string {
	return [2]string{g.Commander1, g.Commander2}
}

func (g Game) Factions() [2]string {
	return [2]string{g.Faction1, g.Faction2}
}

// MonthKey groups games by "{year}-{month}".
func (g Game) MonthKey() string {
	return MonthKey(g.Year, g.Month)
}

// Side returns the commander, roster and stragglers of team 1 or 2.
func (g Game) Side(team Team) (commander string, roster []string, stragglers []string) {
	switch team {
	case TeamOne:
		return g.Commander1, g.TeamOne, g.TeamOneStraggler
	case TeamTwo:
		return g.Commander2, g.TeamTwo, g.TeamTwoStraggler
	default:
		return "", nil, nil
	}
}
