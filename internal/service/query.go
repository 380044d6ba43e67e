package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goserg/bzstats/internal/filter"
	"github.com/goserg/bzstats/internal/ranking"
)

var ErrInvalidQuery = errors.New("invalid query")

// Query is the dashboard selection: what to look at and how to rank it.
type Query struct {
	Dimension filter.Dimension
	Value     string
	// Year is 0 for all time.
	Year     int
	Method   ranking.Method
	MinGames ranking.MinGames

	defaultMethod   ranking.Method
	defaultMinGames ranking.MinGames
}

func NewQuery(method ranking.Method, minGames ranking.MinGames) Query {
	q := Query{defaultMethod: method, defaultMinGames: minGames}
	q.ResetFilters()
	return q
}

// DefaultQuery looks at everything, ranked by Wilson score with a 3% minimum.
func DefaultQuery() Query {
	return NewQuery(ranking.Wilson, ranking.MinGames{Percent: 3, IsPercent: true})
}

func (q *Query) SetAnalysisDimension(s string) error {
	d, err := filter.ParseDimension(s)
	if err != nil {
		return err
	}
	q.Dimension = d
	return nil
}

func (q *Query) SetFilterValue(s string) {
	q.Value = strings.TrimSpace(s)
}

func (q *Query) SetTimePeriod(s string) error {
	year, err := filter.ParsePeriod(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	q.Year = year
	return nil
}

func (q *Query) SetRankingMethod(s string) error {
	m, err := ranking.ParseMethod(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	q.Method = m
	return nil
}

func (q *Query) SetMinGameRequirement(s string) error {
	m, err := ranking.ParseMinGames(s)
	if err != nil {
		return err
	}
	q.MinGames = m
	return nil
}

func (q *Query) ResetFilters() {
	q.Dimension = filter.General
	q.Value = ""
	q.Year = 0
	q.Method = q.defaultMethod
	q.MinGames = q.defaultMinGames
}

// Params are the raw selection values. Empty fields keep the current value.
type Params struct {
	Dimension string
	Value     string
	Period    string
	Method    string
	MinGames  string
}

// Apply sets every non-empty field and reports all bad fields at once.
func (q *Query) Apply(p Params) error {
	var err error
	if p.Dimension != "" {
		err = errors.Join(err, q.SetAnalysisDimension(p.Dimension))
	}
	if p.Value != "" {
		q.SetFilterValue(p.Value)
	}
	if p.Period != "" {
		err = errors.Join(err, q.SetTimePeriod(p.Period))
	}
	if p.Method != "" {
		err = errors.Join(err, q.SetRankingMethod(p.Method))
	}
	if p.MinGames != "" {
		err = errors.Join(err, q.SetMinGameRequirement(p.MinGames))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}

func (q Query) Period() string {
	if q.Year == 0 {
		return filter.AllTime
	}
	return strconv.Itoa(q.Year)
}

func (q Query) Filter() filter.Filter {
	return filter.Filter{Year: q.Year, Dimension: q.Dimension, Value: q.Value}
}
