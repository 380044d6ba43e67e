package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/roles"
)

func newGame(year int, month, mapName, c1, f1, c2, f2, winner string) domain.Game {
	g := domain.Game{
		Year: year, Month: month, Map: mapName,
		Commander1: c1, Faction1: f1,
		Commander2: c2, Faction2: f2,
		Winner: winner,
	}
	if winner == c1 {
		g.Loser, g.WinningFaction, g.LosingFaction = c2, f1, f2
	} else {
		g.WinnerIndex = 1
		g.Loser, g.WinningFaction, g.LosingFaction = c1, f2, f1
	}
	return g
}

func timed(t string) domain.Game {
	return domain.Game{Time: t, HasTime: t != ""}
}

func TestFactionPerformanceTwoGames(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "May", "Dustbowl", "Alice", "I.S.D.F", "Bob", "Hadean", "Alice"),
		newGame(2024, "May", "Dustbowl", "Bob", "Hadean", "Alice", "I.S.D.F", "Bob"),
	}
	got := FactionPerformance(games)
	assert.Equal(t, []Record{
		{Label: "I.S.D.F", Wins: 1, Losses: 1},
		{Label: "Hadean", Wins: 1, Losses: 1},
	}, got)
	assert.InDelta(t, 50, got[0].WinRate(), 1e-9)
}

func TestFactionPerformanceMirror(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "May", "Dustbowl", "Alice", "Scion", "Bob", "Scion", "Bob"),
	}
	got := FactionPerformance(games)
	assert.Equal(t, []Record{{Label: "Scion", Wins: 1, Losses: 0}}, got)
	assert.InDelta(t, 100, got[0].WinRate(), 1e-9)
}

func TestRecordWinRateEmpty(t *testing.T) {
	assert.Zero(t, Record{}.WinRate())
	assert.Zero(t, MonthlyRecord{}.WinRate())
}

func TestMapPopularity(t *testing.T) {
	games := []domain.Game{
		{Map: "Ice Field"},
		{Map: "Dustbowl"},
		{Map: "Dustbowl"},
		{Map: "Canyon"},
		{Map: "Ice Field"},
		{Map: "Dustbowl"},
	}
	assert.Equal(t, []Count{
		{Label: "Dustbowl", Count: 3},
		{Label: "Ice Field", Count: 2},
		{Label: "Canyon", Count: 1},
	}, MapPopularity(games))
	assert.Empty(t, MapPopularity(nil))
}

func TestFactionChoice(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "May", "Dustbowl", "Alice", "Scion", "Bob", "Hadean", "Alice"),
		newGame(2024, "May", "Dustbowl", "Bob", "Hadean", "Alice", "I.S.D.F", "Bob"),
		newGame(2024, "May", "Dustbowl", "Alice", "Scion", "Carol", "Scion", "Carol"),
	}
	choice := FactionChoice(games)
	assert.Equal(t, map[string]int{"Scion": 2, "I.S.D.F": 1}, choice["Alice"])
	assert.Equal(t, map[string]int{"Hadean": 2}, choice["Bob"])
	assert.Equal(t, map[string]int{"Scion": 1}, choice["Carol"])

	rows := FactionChoiceRows(games)
	require.Len(t, rows, 3)
	assert.Equal(t, FactionUsage{
		Commander: "Alice",
		Total:     3,
		Factions:  []Count{{Label: "Scion", Count: 2}, {Label: "I.S.D.F", Count: 1}},
	}, rows[0])
	assert.Equal(t, "Bob", rows[1].Commander)
	assert.Equal(t, "Carol", rows[2].Commander)
}

func TestHeadToHead(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "May", "Dustbowl", "Alice", "Scion", "Bob", "Hadean", "Alice"),
		newGame(2024, "May", "Dustbowl", "Bob", "Hadean", "Alice", "Scion", "Alice"),
		newGame(2024, "May", "Dustbowl", "Carol", "Scion", "Alice", "Scion", "Carol"),
		newGame(2024, "May", "Dustbowl", "Carol", "Scion", "Bob", "Scion", "Carol"),
	}
	assert.Equal(t, []Record{
		{Label: "Bob", Wins: 2},
		{Label: "Carol", Losses: 1},
	}, HeadToHead(games, "Alice"))
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in     string
		unit   BareUnit
		want   int
		wantOK bool
	}{
		{in: "1:30:00", unit: Minutes, want: 90, wantOK: true},
		{in: "0:44:31", unit: Minutes, want: 45, wantOK: true},
		{in: "45:29", unit: Minutes, want: 45, wantOK: true},
		{in: "45:30", unit: Minutes, want: 46, wantOK: true},
		{in: " 72 ", unit: Minutes, want: 72, wantOK: true},
		{in: "2700", unit: Seconds, want: 45, wantOK: true},
		{in: "", unit: Minutes},
		{in: "   ", unit: Minutes},
		{in: "ten", unit: Minutes},
		{in: "1:2:3:4", unit: Minutes},
		{in: "-5", unit: Minutes},
		{in: "1::", unit: Minutes},
		{in: "NaN", unit: Minutes},
		{in: "nan:00", unit: Minutes},
		{in: "Inf", unit: Minutes},
		{in: "1e300", unit: Minutes},
		{in: "1e300", unit: Seconds},
		{in: "99999999:00:00", unit: Minutes},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMinutes(tt.in, tt.unit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A bare number is read as minutes unless configured otherwise.
func TestParseMinutesBareNumberDefaultsToMinutes(t *testing.T) {
	unit, err := ParseBareUnit("")
	require.NoError(t, err)
	got, ok := ParseMinutes("40", unit)
	require.True(t, ok)
	assert.Equal(t, 40, got)

	unit, err = ParseBareUnit("Seconds")
	require.NoError(t, err)
	got, ok = ParseMinutes("40", unit)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	_, err = ParseBareUnit("hours")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestDurationHistogram(t *testing.T) {
	games := []domain.Game{
		timed("1:30:00"),
		timed(""),
		timed("14:59"),
		timed("15"),
		timed("3:05:00"),
		timed("garbage"),
		timed("119"),
	}
	buckets := DurationHistogram(games, Minutes)
	require.Len(t, buckets, 8)

	labels := make([]string, 0, len(buckets))
	counts := map[string]int{}
	total := 0
	for _, b := range buckets {
		labels = append(labels, b.Label)
		counts[b.Label] = b.Count
		total += b.Count
	}
	assert.Equal(t, []string{"0-15", "15-30", "30-45", "45-60", "60-90", "90-120", "120-180", "180+"}, labels)
	assert.Equal(t, 2, counts["90-120"])
	assert.Equal(t, 2, counts["15-30"], "14:59 rounds up to 15")
	assert.Equal(t, 1, counts["180+"])
	assert.Equal(t, 5, total, "blank and unparsable times are excluded")
}

func TestDurationHistogramBlankTimeDoesNotCount(t *testing.T) {
	with := DurationHistogram([]domain.Game{timed("1:30:00"), timed("")}, Minutes)
	without := DurationHistogram([]domain.Game{timed("1:30:00")}, Minutes)
	assert.Equal(t, without, with)
	assert.Equal(t, 1, with[5].Count)
	assert.Equal(t, 90, with[5].Min)
	assert.Equal(t, 120, with[5].Max)
}

func TestMonthlyActivityOrder(t *testing.T) {
	games := []domain.Game{
		{Year: 2024, Month: "March"},
		{Year: 2023, Month: "December"},
		{Year: 2024, Month: "January"},
		{Year: 2024, Month: "March"},
		{Year: 2024, Month: "Bonus"},
		{Year: 2024, Month: "February"},
	}
	assert.Equal(t, []Count{
		{Label: "2023-December", Count: 1},
		{Label: "2024-January", Count: 1},
		{Label: "2024-February", Count: 1},
		{Label: "2024-March", Count: 2},
		{Label: "2024-Bonus", Count: 1},
	}, MonthlyActivity(games))
}

func TestMonthlyPerformance(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "June", "Dustbowl", "Alice", "Scion", "Bob", "Hadean", "Alice"),
		newGame(2024, "May", "Dustbowl", "Bob", "Hadean", "Carol", "Scion", "Bob"),
		newGame(2024, "June", "Dustbowl", "Carol", "Scion", "Bob", "Hadean", "Carol"),
	}
	games[1].TeamTwo = []string{"Alice"}
	games[2].TeamTwoStraggler = []string{"Alice"}

	views := roles.Classify(games, "Alice")
	got := MonthlyPerformance(views)
	assert.Equal(t, []MonthlyRecord{
		{Month: "2024-May", Games: 1, ThugGames: 1},
		{Month: "2024-June", Games: 2, Wins: 1, CommanderGames: 1, StragglerGames: 1},
	}, got)
}

func TestTeammateFrequency(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "May", "Dustbowl", "Bob", "Scion", "Carol", "Hadean", "Bob"),
		newGame(2024, "May", "Dustbowl", "Dan", "Scion", "Bob", "Hadean", "Bob"),
		newGame(2024, "May", "Dustbowl", "Alice", "Scion", "Carol", "Hadean", "Alice"),
	}
	games[0].TeamOne = []string{"Alice", "Eve"}
	games[0].TeamTwo = []string{"Frank"}
	games[1].TeamTwo = []string{"Eve"}
	games[1].TeamTwoStraggler = []string{"Alice", "Alice"}
	games[2].TeamOne = []string{"Eve", "Gina"}

	views := roles.Classify(games, "Alice")
	assert.Equal(t, []Count{
		{Label: "Eve", Count: 3},
		{Label: "Bob", Count: 2},
		{Label: "Gina", Count: 1},
	}, TeammateFrequency(views, "Alice", 0))

	assert.Equal(t, []Count{
		{Label: "Eve", Count: 3},
		{Label: "Bob", Count: 2},
	}, TeammateFrequency(views, "Alice", 2))
}

func TestPlayerMapsAndFactions(t *testing.T) {
	games := []domain.Game{
		newGame(2024, "May", "Dustbowl", "Alice", "Scion", "Bob", "Hadean", "Alice"),
		newGame(2024, "May", "Canyon", "Bob", "Hadean", "Alice", "I.S.D.F", "Bob"),
		newGame(2024, "May", "Canyon", "Bob", "Hadean", "Carol", "I.S.D.F", "Bob"),
	}
	games[2].TeamOne = []string{"Alice"}
	views := roles.Classify(games, "Alice")

	assert.Equal(t, []Record{
		{Label: "Canyon", Wins: 1, Losses: 1},
		{Label: "Dustbowl", Wins: 1},
	}, PlayerMaps(views))
	assert.Equal(t, []Record{
		{Label: "Scion", Wins: 1},
		{Label: "I.S.D.F", Losses: 1},
	}, PlayerFactions(views))
}
