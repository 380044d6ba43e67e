package ingest

import (
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

type entry struct {
	key   string
	value gjson.Result
}

// orderedEntries lists the members of an object in the order a browser
// iterates object keys: array-index-like keys ascending by value first, then
// all other keys in document order.
func orderedEntries(obj gjson.Result) []entry {
	var indexed, named []entry
	obj.ForEach(func(key, value gjson.Result) bool {
		e := entry{key: key.String(), value: value}
		if isIndexKey(e.key) {
			indexed = append(indexed, e)
		} else {
			named = append(named, e)
		}
		return true
	})
	sort.SliceStable(indexed, func(i, j int) bool {
		a, _ := strconv.ParseUint(indexed[i].key, 10, 32)
		b, _ := strconv.ParseUint(indexed[j].key, 10, 32)
		return a < b
	})
	return append(indexed, named...)
}

func isIndexKey(key string) bool {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	return err == nil && n < 1<<32-1
}
