package ingest

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/goserg/bzstats/internal/domain"
)

const commanderSeparator = " vs "

// ParseRaw reads one leaf object into a RawGame, recording which optional
// fields were present.
func ParseRaw(leaf gjson.Result) (domain.RawGame, error) {
	var raw domain.RawGame
	var factionsErr error
	factionsSeen := false
	leaf.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "commanders":
			raw.Commanders = value.String()
		case "factions":
			factionsSeen = true
			raw.Factions, factionsErr = ParseFactions(value)
		case "winner":
			raw.Winner = value.String()
		case "winning faction":
			raw.WinningFaction = value.String()
		case "map":
			raw.Map = value.String()
		case "time":
			raw.Time, raw.HasTime = parseTime(value)
		case "teamOne":
			raw.TeamOne, raw.HasTeamOne = parseNames(value)
		case "teamTwo":
			raw.TeamTwo, raw.HasTeamTwo = parseNames(value)
		case "teamOneStraggler":
			raw.TeamOneStraggler, raw.HasTeamOneStraggler = parseNames(value)
		case "teamTwoStraggler":
			raw.TeamTwoStraggler, raw.HasTeamTwoStraggler = parseNames(value)
		default:
			if raw.Extra == nil {
				raw.Extra = make(map[string]string)
			}
			raw.Extra[key.String()] = value.Raw
		}
		return true
	})
	if !factionsSeen {
		return raw, ErrBadFactions
	}
	return raw, factionsErr
}

// ParseFactions accepts a JSON array, a string holding JSON array text, or
// the bracketed comma list written by older exporters ("[I.S.D.F, Hadean]").
func ParseFactions(value gjson.Result) ([]string, error) {
	var names []string
	switch {
	case value.IsArray():
		names = stringsOf(value)
	case value.Type == gjson.String:
		s := value.String()
		if parsed := gjson.Parse(s); gjson.Valid(s) && parsed.IsArray() {
			names = stringsOf(parsed)
		} else {
			names = splitBracketList(s)
		}
	default:
		return nil, ErrBadFactions
	}
	if len(names) != 2 || names[0] == "" || names[1] == "" {
		return nil, ErrBadFactions
	}
	return names, nil
}

func splitBracketList(s string) []string {
	s = strings.NewReplacer("[", "", "]", "").Replace(s)
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.Trim(strings.TrimSpace(p), `"'`))
	}
	return names
}

func stringsOf(arr gjson.Result) []string {
	elems := arr.Array()
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.String())
	}
	return out
}

func parseNames(value gjson.Result) ([]string, bool) {
	switch {
	case value.IsArray():
		return stringsOf(value), true
	case value.Type == gjson.String:
		s := value.String()
		if parsed := gjson.Parse(s); gjson.Valid(s) && parsed.IsArray() {
			return stringsOf(parsed), true
		}
	}
	return nil, false
}

func parseTime(value gjson.Result) (string, bool) {
	switch value.Type {
	case gjson.String:
		return value.String(), true
	case gjson.Number:
		return value.Raw, true
	default:
		return "", false
	}
}

// Build derives the canonical game from a raw record found at the given
// position of the document. mapKey is used when the record has no map field.
func Build(raw domain.RawGame, year int, month, day, mapKey string) (domain.Game, error) {
	commanders := strings.Split(raw.Commanders, commanderSeparator)
	if len(commanders) != 2 || commanders[0] == "" || commanders[1] == "" {
		return domain.Game{}, ErrBadCommanders
	}
	if len(raw.Factions) != 2 {
		return domain.Game{}, ErrBadFactions
	}
	winner := -1
	for i, c := range commanders {
		if c == raw.Winner {
			winner = i
			break
		}
	}
	if winner < 0 {
		return domain.Game{}, ErrUnknownWinner
	}
	loser := 1 - winner

	winningFaction := raw.WinningFaction
	if winningFaction == "" {
		winningFaction = raw.Factions[winner]
	}
	mapName := raw.Map
	if mapName == "" {
		mapName = mapKey
	}
	stragglers := len(raw.TeamOneStraggler) + len(raw.TeamTwoStraggler)

	return domain.Game{
		Year:             year,
		Month:            month,
		Day:              day,
		Map:              mapName,
		Commander1:       commanders[0],
		Commander2:       commanders[1],
		Faction1:         raw.Factions[0],
		Faction2:         raw.Factions[1],
		WinnerIndex:      winner,
		Winner:           commanders[winner],
		Loser:            commanders[loser],
		WinningFaction:   winningFaction,
		LosingFaction:    raw.Factions[loser],
		TeamOneSize:      len(raw.TeamOne) + 1,
		TeamTwoSize:      len(raw.TeamTwo) + 1,
		TotalPlayers:     len(raw.TeamOne) + len(raw.TeamTwo) + 2,
		HasStraggler:     stragglers > 0,
		StragglerCount:   stragglers,
		Time:             raw.Time,
		HasTime:          raw.HasTime,
		TeamOne:          raw.TeamOne,
		TeamTwo:          raw.TeamTwo,
		TeamOneStraggler: raw.TeamOneStraggler,
		TeamTwoStraggler: raw.TeamTwoStraggler,
		Extra:            raw.Extra,
	}, nil
}
