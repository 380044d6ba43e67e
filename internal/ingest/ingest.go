// Package ingest flattens the nested year/month/day/map match export into
// canonical game records.
//
// The source document is untrusted: individual leaf records that cannot be
// interpreted are skipped with a warning, and the rest of the document is
// still normalized.
package ingest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/goserg/bzstats/internal/domain"
)

const (
	LastUpdatedKey = "last_updated"
	rawYearPrefix  = "raw_"
	monthWrapper   = "month"
)

var (
	ErrInvalidJSON   = errors.New("document is not valid JSON")
	ErrNotObject     = errors.New("document root is not an object")
	ErrBadCommanders = errors.New(`commanders must have the form "A vs B"`)
	ErrBadFactions   = errors.New("factions must name exactly two factions")
	ErrUnknownWinner = errors.New("winner matches neither commander")
)

type WarningKind string

const (
	KindBadCommanders WarningKind = "bad_commanders"
	KindBadFactions   WarningKind = "bad_factions"
	KindUnknownWinner WarningKind = "unknown_winner"
	KindOther         WarningKind = "other"
)

// Warning describes one skipped leaf record.
type Warning struct {
	Path string
	Kind WarningKind
	Err  error
}

func (w Warning) Error() string {
	return w.Path + ": " + w.Err.Error()
}

func (w Warning) Unwrap() error {
	return w.Err
}

type Result struct {
	LastUpdated string
	Games       []domain.Game
	Warnings    []Warning
}

// Normalize converts the raw document into an ordered slice of games.
// It fails only when the document as a whole cannot be read.
func Normalize(data []byte, log logrus.FieldLogger) (Result, error) {
	if !gjson.ValidBytes(data) {
		return Result{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Result{}, ErrNotObject
	}
	n := normalizer{log: log}
	n.result.LastUpdated = root.Get(LastUpdatedKey).String()

	for _, year := range orderedEntries(root) {
		if year.key == LastUpdatedKey {
			continue
		}
		n.year(year)
	}
	return n.result, nil
}

type normalizer struct {
	log    logrus.FieldLogger
	result Result
}

func (n *normalizer) year(e entry) {
	year, err := strconv.Atoi(e.key)
	if err != nil || !e.value.IsObject() {
		n.log.WithField("key", e.key).Debug("skipping non-year partition")
		return
	}
	var months gjson.Result
	e.value.ForEach(func(key, value gjson.Result) bool {
		if key.String() == rawYearPrefix+e.key {
			months = value
			return false
		}
		return true
	})
	if !months.IsObject() {
		n.log.WithField("year", year).Debug("skipping year without raw data")
		return
	}
	if wrapped := months.Get(monthWrapper); wrapped.IsObject() {
		months = wrapped
	}

	for _, month := range orderedEntries(months) {
		if !month.value.IsObject() {
			continue
		}
		for _, day := range orderedEntries(month.value) {
			if !day.value.IsObject() {
				continue
			}
			for _, m := range orderedEntries(day.value) {
				path := fmt.Sprintf("%d/%s/%s/%s", year, month.key, day.key, m.key)
				loc := location{year: year, month: month.key, day: day.key, mapKey: m.key}
				switch {
				case m.value.IsObject():
					n.leaf(path, loc, m.value)
				case m.value.IsArray():
					for i, leaf := range m.value.Array() {
						if !leaf.IsObject() {
							continue
						}
						n.leaf(fmt.Sprintf("%s[%d]", path, i), loc, leaf)
					}
				}
			}
		}
	}
}

type location struct {
	year   int
	month  string
	day    string
	mapKey string
}

func (n *normalizer) leaf(path string, loc location, leaf gjson.Result) {
	if isEmptyObject(leaf) {
		return
	}
	raw, err := ParseRaw(leaf)
	if err == nil {
		var game domain.Game
		game, err = Build(raw, loc.year, loc.month, loc.day, loc.mapKey)
		if err == nil {
			n.result.Games = append(n.result.Games, game)
			return
		}
	}
	w := Warning{Path: path, Kind: kindOf(err), Err: err}
	n.log.WithFields(logrus.Fields{
		"path": w.Path,
		"kind": w.Kind,
	}).WithError(err).Warn("skipping malformed game record")
	n.result.Warnings = append(n.result.Warnings, w)
}

func kindOf(err error) WarningKind {
	switch {
	case errors.Is(err, ErrBadCommanders):
		return KindBadCommanders
	case errors.Is(err, ErrBadFactions):
		return KindBadFactions
	case errors.Is(err, ErrUnknownWinner):
		return KindUnknownWinner
	default:
		return KindOther
	}
}

func isEmptyObject(r gjson.Result) bool {
	empty := true
	r.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}
