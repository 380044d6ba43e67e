package aggregate

import (
	"sort"

	"github.com/goserg/bzstats/internal/domain"
)

// MapPopularity counts games per map, most played first.
func MapPopularity(games []domain.Game) []Count {
	c := newCounter()
	for i := range games {
		c.add(games[i].Map, 1)
	}
	return c.sorted()
}

// FactionChoice counts commander -> faction -> games from both sides of
// every game.
func FactionChoice(games []domain.Game) map[string]map[string]int {
	choice := make(map[string]map[string]int)
	for i := range games {
		g := games[i]
		for side, commander := range g.Commanders() {
			if choice[commander] == nil {
				choice[commander] = make(map[string]int)
			}
			choice[commander][g.Factions()[side]]++
		}
	}
	return choice
}

type FactionUsage struct {
	Commander string
	Total     int
	Factions  []Count
}

// FactionChoiceRows is FactionChoice ordered by the commanders' game count,
// with each commander's factions ordered by use.
func FactionChoiceRows(games []domain.Game) []FactionUsage {
	index := make(map[string]int)
	var rows []FactionUsage
	var counters []*counter
	for i := range games {
		g := games[i]
		for side, commander := range g.Commanders() {
			idx, ok := index[commander]
			if !ok {
				idx = len(rows)
				index[commander] = idx
				rows = append(rows, FactionUsage{Commander: commander})
				counters = append(counters, newCounter())
			}
			rows[idx].Total++
			counters[idx].add(g.Factions()[side], 1)
		}
	}
	for i := range rows {
		rows[i].Factions = counters[i].sorted()
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}

// FactionPerformance counts each game once per faction that appeared in it.
// The faction matching the winning faction takes the win, any other takes
// the loss, so a mirror match is a single win.
func FactionPerformance(games []domain.Game) []Record {
	r := newRecorder()
	for i := range games {
		g := games[i]
		r.add(g.Faction1, g.Faction1 == g.WinningFaction)
		if g.Faction2 != g.Faction1 {
			r.add(g.Faction2, g.Faction2 == g.WinningFaction)
		}
	}
	return r.byGames()
}

// HeadToHead tallies a commander's record against each opposing commander.
func HeadToHead(games []domain.Game, commander string) []Record {
	r := newRecorder()
	for i := range games {
		g := games[i]
		switch commander {
		case g.Commander1:
			r.add(g.Commander2, g.Winner == commander)
		case g.Commander2:
			r.add(g.Commander1, g.Winner == commander)
		}
	}
	return r.byGames()
}
