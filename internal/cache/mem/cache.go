package mem

import (
	"cmp"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/normalize"
)

// Cache resolves user typed names to the spelling used in the games.
type Cache struct {
	mu       sync.RWMutex
	players  map[string]string
	maps     map[string]string
	factions map[string]string
	years    []int
}

func New() *Cache {
	return &Cache{
		players:  make(map[string]string),
		maps:     make(map[string]string),
		factions: make(map[string]string),
	}
}

func (c *Cache) Update(games []domain.Game) {
	players := make(map[string]string)
	maps := make(map[string]string)
	factions := make(map[string]string)
	years := make(map[int]struct{})
	remember := func(index map[string]string, name string) {
		key := normalize.Name(name)
		if key == "" {
			return
		}
		if _, ok := index[key]; !ok {
			index[key] = name
		}
	}
	for i := range games {
		g := games[i]
		for _, name := range participants(g) {
			remember(players, name)
		}
		remember(maps, g.Map)
		remember(factions, g.Faction1)
		remember(factions, g.Faction2)
		years[g.Year] = struct{}{}
	}
	sortedYears := lo.Keys(years)
	slices.Sort(sortedYears)
	slices.Reverse(sortedYears)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.players, c.maps, c.factions, c.years = players, maps, factions, sortedYears
}

func (c *Cache) GetPlayerByName(name string) (string, bool) {
	return c.lookup(c.players, name)
}

func (c *Cache) GetMapByName(name string) (string, bool) {
	return c.lookup(c.maps, name)
}

func (c *Cache) GetFactionByName(name string) (string, bool) {
	return c.lookup(c.factions, name)
}

func (c *Cache) lookup(index map[string]string, name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	found, ok := index[normalize.Name(name)]
	return found, ok
}

func (c *Cache) Players() []string {
	return c.names(func() map[string]string { return c.players })
}

func (c *Cache) Maps() []string {
	return c.names(func() map[string]string { return c.maps })
}

func (c *Cache) Factions() []string {
	return c.names(func() map[string]string { return c.factions })
}

// Years lists the years with games, newest first.
func (c *Cache) Years() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.years)
}

func (c *Cache) names(index func() map[string]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := lo.Values(index())
	slices.SortFunc(names, func(a, b string) int {
		return compareFolded(a, b)
	})
	return names
}

func compareFolded(a, b string) int {
	return cmp.Compare(normalize.Name(a), normalize.Name(b))
}

func participants(g domain.Game) []string {
	names := []string{g.Commander1, g.Commander2}
	for _, side := range [][]string{g.TeamOne, g.TeamTwo, g.TeamOneStraggler, g.TeamTwoStraggler} {
		names = append(names, side...)
	}
	return names
}
