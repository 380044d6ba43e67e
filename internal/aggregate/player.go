package aggregate

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/normalize"
)

// MonthlyActivity counts games per "{year}-{month}" bucket in calendar order.
func MonthlyActivity(games []domain.Game) []Count {
	c := newCounter()
	var months []monthKey
	for i := range games {
		key := games[i].MonthKey()
		if _, ok := c.index[key]; !ok {
			months = append(months, newMonthKey(games[i].Year, games[i].Month))
		}
		c.add(key, 1)
	}
	sortMonths(months)
	out := make([]Count, 0, len(months))
	for _, m := range months {
		out = append(out, c.counts[c.index[m.key]])
	}
	return out
}

type MonthlyRecord struct {
	Month string
	Games int
	Wins  int

	CommanderGames int
	ThugGames      int
	StragglerGames int
}

func (m MonthlyRecord) WinRate() float64 {
	if m.Games == 0 {
		return 0
	}
	return float64(m.Wins) / float64(m.Games) * 100
}

// MonthlyPerformance tallies a player's results and roles per month.
func MonthlyPerformance(views []domain.PlayerGame) []MonthlyRecord {
	index := make(map[string]int)
	var records []MonthlyRecord
	var months []monthKey
	for _, v := range views {
		key := v.MonthKey()
		i, ok := index[key]
		if !ok {
			i = len(records)
			index[key] = i
			records = append(records, MonthlyRecord{Month: key})
			months = append(months, newMonthKey(v.Year, v.Month))
		}
		r := &records[i]
		r.Games++
		if v.TeamWon {
			r.Wins++
		}
		switch {
		case v.Role == domain.RoleCommander:
			r.CommanderGames++
		case v.IsThug():
			r.ThugGames++
		}
		if v.IsStraggler {
			r.StragglerGames++
		}
	}
	sortMonths(months)
	out := make([]MonthlyRecord, 0, len(months))
	for _, m := range months {
		out = append(out, records[index[m.key]])
	}
	return out
}

type monthKey struct {
	key   string
	year  int
	num   int
	month string
}

// Unrecognised month tokens sort after December, by text.
func newMonthKey(year int, month string) monthKey {
	num, ok := normalize.MonthNumber(month)
	if !ok {
		num = 13
	}
	return monthKey{key: domain.MonthKey(year, month), year: year, num: num, month: month}
}

func sortMonths(months []monthKey) {
	slices.SortStableFunc(months, func(a, b monthKey) int {
		if c := cmp.Compare(a.year, b.year); c != 0 {
			return c
		}
		if c := cmp.Compare(a.num, b.num); c != 0 {
			return c
		}
		return cmp.Compare(a.month, b.month)
	})
}

// TeammateFrequency counts how often others played on the player's side:
// the side's commander, roster and stragglers. topN <= 0 keeps everyone.
func TeammateFrequency(views []domain.PlayerGame, player string, topN int) []Count {
	c := newCounter()
	for _, v := range views {
		commander, roster, stragglers := v.Side(v.Team)
		if commander == "" {
			continue
		}
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, name := range append(append([]string{commander}, roster...), stragglers...) {
			if name == "" || name == player || !seen.Add(name) {
				continue
			}
			c.add(name, 1)
		}
	}
	out := c.sorted()
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// PlayerMaps is the player's record on each map, most played first.
func PlayerMaps(views []domain.PlayerGame) []Record {
	r := newRecorder()
	for _, v := range views {
		r.add(v.Map, v.TeamWon)
	}
	return r.byGames()
}

// PlayerFactions is the player's record per faction over the games they
// commanded.
func PlayerFactions(views []domain.PlayerGame) []Record {
	r := newRecorder()
	for _, v := range views {
		if v.Role != domain.RoleCommander {
			continue
		}
		faction := v.Faction1
		if v.Team == domain.TeamTwo {
			faction = v.Faction2
		}
		r.add(faction, v.TeamWon)
	}
	return r.byGames()
}
