package aggregate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/goserg/bzstats/internal/domain"
)

// BareUnit says how a time value without colons is read.
type BareUnit string

const (
	Minutes BareUnit = "minutes"
	Seconds BareUnit = "seconds"
)

var ErrUnknownUnit = errors.New("bare time unit must be minutes or seconds")

func ParseBareUnit(s string) (BareUnit, error) {
	switch u := BareUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case "", Minutes:
		return Minutes, nil
	case Seconds:
		return Seconds, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// maxMinutes bounds a readable game length. Larger values are treated as
// garbage rather than converted.
const maxMinutes = 7 * 24 * 60

// ParseMinutes reads "H:M:S", "M:S" or a bare number and rounds to whole
// minutes. ok is false for blank or unparsable input.
func ParseMinutes(s string, unit BareUnit) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || math.IsNaN(v) || v > maxMinutes*60 {
			return 0, false
		}
		values[i] = v
	}

	var minutes float64
	switch len(values) {
	case 3:
		minutes = values[0]*60 + values[1] + values[2]/60
	case 2:
		minutes = values[0] + values[1]/60
	default:
		minutes = values[0]
		if unit == Seconds {
			minutes /= 60
		}
	}
	if minutes > maxMinutes {
		return 0, false
	}
	return int(math.Round(minutes)), true
}

// Bucket covers [Min, Max) minutes. Max is 0 for the open-ended last bucket.
type Bucket struct {
	Label string
	Min   int
	Max   int
	Count int
}

var bucketBounds = []int{0, 15, 30, 45, 60, 90, 120, 180}

func emptyBuckets() []Bucket {
	buckets := make([]Bucket, len(bucketBounds))
	for i, from := range bucketBounds {
		if i == len(bucketBounds)-1 {
			buckets[i] = Bucket{Label: fmt.Sprintf("%d+", from), Min: from}
			continue
		}
		to := bucketBounds[i+1]
		buckets[i] = Bucket{Label: fmt.Sprintf("%d-%d", from, to), Min: from, Max: to}
	}
	return buckets
}

// DurationHistogram buckets game lengths. Games without a usable time are
// left out entirely.
func DurationHistogram(games []domain.Game, unit BareUnit) []Bucket {
	buckets := emptyBuckets()
	timed := lo.Filter(games, func(g domain.Game, _ int) bool {
		return g.HasTime
	})
	for _, g := range timed {
		m, ok := ParseMinutes(g.Time, unit)
		if !ok {
			continue
		}
		for i := len(buckets) - 1; i >= 0; i-- {
			if m >= buckets[i].Min {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
