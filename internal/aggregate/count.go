// Package aggregate reduces games into the counts behind each chart.
package aggregate

import "sort"

type Count struct {
	Label string
	Count int
}

// Record is a win/loss tally for one label.
type Record struct {
	Label  string
	Wins   int
	Losses int
}

func (r Record) Games() int {
	return r.Wins + r.Losses
}

// WinRate is a percentage, 0 for an empty record.
func (r Record) WinRate() float64 {
	if r.Games() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games()) * 100
}

// counter counts labels and remembers the order they first appeared in.
type counter struct {
	index  map[string]int
	counts []Count
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(label string, n int) {
	i, ok := c.index[label]
	if !ok {
		i = len(c.counts)
		c.index[label] = i
		c.counts = append(c.counts, Count{Label: label})
	}
	c.counts[i].Count += n
}

// sorted returns the counts highest first, ties by first appearance.
func (c *counter) sorted() []Count {
	out := make([]Count, len(c.counts))
	copy(out, c.counts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

type recorder struct {
	index   map[string]int
	records []Record
}

func newRecorder() *recorder {
	return &recorder{index: make(map[string]int)}
}

func (r *recorder) get(label string) *Record {
	i, ok := r.index[label]
	if !ok {
		i = len(r.records)
		r.index[label] = i
		r.records = append(r.records, Record{Label: label})
	}
	return &r.records[i]
}

func (r *recorder) add(label string, won bool) {
	rec := r.get(label)
	if won {
		rec.Wins++
	} else {
		rec.Losses++
	}
}

// byGames sorts records by games played, highest first.
func (r *recorder) byGames() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Games() > out[j].Games()
	})
	return out
}
