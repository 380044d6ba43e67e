package chart

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Collector is an in-memory Surface. With targets set it only accepts
// charts whose ID is one of them.
type Collector struct {
	mu      sync.Mutex
	targets mapset.Set[string]
	charts  []Chart
}

func NewCollector(targets ...string) *Collector {
	c := &Collector{}
	if len(targets) > 0 {
		c.targets = mapset.NewSet[string](targets...)
	}
	return c
}

func (c *Collector) Render(chart Chart) error {
	if c.targets != nil && !c.targets.Contains(chart.ID) {
		return ErrMissingTarget
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.charts = append(c.charts, chart)
	return nil
}

func (c *Collector) Charts() []Chart {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Chart, len(c.charts))
	copy(out, c.charts)
	return out
}
