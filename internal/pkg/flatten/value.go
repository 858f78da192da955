package flatten

import (
	"fmt"
	"sort"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"

	"github.com/kobotools/kobotab/internal/pkg/encoding/json"
)

// Kind is the explicit tag of a submission value.
// Submissions are dynamic JSON, so every field is classified once
// and all further decisions dispatch on the tag.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindList
)

func classify(value any) Kind {
	switch value.(type) {
	case *orderedmap.OrderedMap, map[string]any:
		return KindObject
	case []any:
		return KindList
	default:
		return KindScalar
	}
}

// asObject normalizes both decoded object representations to an ordered map.
func asObject(value any) *orderedmap.OrderedMap {
	switch v := value.(type) {
	case *orderedmap.OrderedMap:
		return v
	case map[string]any:
		m := orderedmap.New()
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		// plain maps have no order to preserve, sort for determinism
		sort.Strings(keys)
		for _, k := range keys {
			m.Set(k, v[k])
		}
		return m
	default:
		return nil
	}
}

// objectList returns list elements as objects if every element is an object.
// A list with any non-object element is not a repeating group.
func objectList(list []any) ([]*orderedmap.OrderedMap, bool) {
	if len(list) == 0 {
		return nil, false
	}
	out := make([]*orderedmap.OrderedMap, 0, len(list))
	for _, item := range list {
		obj := asObject(item)
		if obj == nil {
			return nil, false
		}
		out = append(out, obj)
	}
	return out, true
}

// scalarValue normalizes one scalar cell value.
// Nil values become the null marker, so column sets stay aligned across rows.
func (c Config) scalarValue(value any) any {
	if value == nil {
		return c.NullValue
	}
	return value
}

// joinList serializes a list of non-record values into one string column.
// A malformed element degrades to its JSON representation, never to an error.
func (c Config) joinList(list []any) string {
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if item == nil {
			parts = append(parts, c.NullValue)
			continue
		}
		if s, err := cast.ToStringE(item); err == nil {
			parts = append(parts, s)
			continue
		}
		if s, err := json.EncodeString(item, false); err == nil {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, ", ")
}
