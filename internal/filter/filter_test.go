package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/bzstats/internal/domain"
)

func games() []domain.Game {
	return []domain.Game{
		{Year: 2023, Map: "Dustbowl", Commander1: "Alice", Commander2: "Bob", Faction1: "I.S.D.F", Faction2: "Hadean"},
		{Year: 2024, Map: "Ice Field", Commander1: "Bob", Commander2: "Carol", Faction1: "Scion", Faction2: "Hadean", TeamOne: []string{"Dan"}},
		{Year: 2024, Map: "Dustbowl", Commander1: "Carol", Commander2: "Alice", Faction1: "I.S.D.F", Faction2: "Scion", TeamTwoStraggler: []string{"Eve"}},
		{Year: 2024, Map: "Dustbowl", Commander1: "Alice", Commander2: "Dan", Faction1: "Hadean", Faction2: "Hadean"},
	}
}

func maps(gs []domain.Game) []string {
	var out []string
	for _, g := range gs {
		out = append(out, g.Map+"/"+g.Commander1)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "everything",
			filter: Filter{Dimension: General},
			want:   []string{"Dustbowl/Alice", "Ice Field/Bob", "Dustbowl/Carol", "Dustbowl/Alice"},
		},
		{
			name:   "year keeps order",
			filter: Filter{Year: 2024, Dimension: General},
			want:   []string{"Ice Field/Bob", "Dustbowl/Carol", "Dustbowl/Alice"},
		},
		{
			name:   "general ignores value",
			filter: Filter{Year: 2023, Dimension: General, Value: "Bob"},
			want:   []string{"Dustbowl/Alice"},
		},
		{
			name:   "player as commander or teammate",
			filter: Filter{Dimension: Player, Value: "Dan"},
			want:   []string{"Ice Field/Bob", "Dustbowl/Alice"},
		},
		{
			name:   "player as straggler",
			filter: Filter{Dimension: Player, Value: "Eve"},
			want:   []string{"Dustbowl/Carol"},
		},
		{
			name:   "map",
			filter: Filter{Year: 2024, Dimension: Map, Value: "Dustbowl"},
			want:   []string{"Dustbowl/Carol", "Dustbowl/Alice"},
		},
		{
			name:   "faction either side",
			filter: Filter{Dimension: Faction, Value: "Scion"},
			want:   []string{"Ice Field/Bob", "Dustbowl/Carol"},
		},
		{
			name:   "empty value",
			filter: Filter{Dimension: Map},
			want:   []string{"Dustbowl/Alice", "Ice Field/Bob", "Dustbowl/Carol", "Dustbowl/Alice"},
		},
		{
			name:   "no match",
			filter: Filter{Dimension: Map, Value: "Moon"},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maps(tt.filter.Apply(games())))
		})
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	in := games()
	out := Filter{Year: 2024}.Apply(in)
	require.Len(t, out, 3)
	out[0].Map = "changed"
	assert.Equal(t, "Ice Field", in[1].Map)
}

func TestParse(t *testing.T) {
	d, err := ParseDimension("faction")
	require.NoError(t, err)
	assert.Equal(t, Faction, d)
	_, err = ParseDimension("weather")
	assert.ErrorIs(t, err, ErrUnknownDimension)

	y, err := ParsePeriod("all")
	require.NoError(t, err)
	assert.Zero(t, y)
	y, err = ParsePeriod("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	_, err = ParsePeriod("last year")
	assert.ErrorIs(t, err, ErrBadPeriod)
}
