// Package form extracts metadata from a form definition document.
//
// Both extractors are read-only traversals of the asset content.
// Malformed or incomplete entries are skipped, never fatal: the extractors
// always return the best-effort view of the form.
package form

import (
	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/kobotools/kobotab/internal/pkg/model"
)

// Choices walks the option-list definitions of the form content and maps
// list name -> option value -> label and global sequence number.
func Choices(asset *model.Asset) model.ChoiceLists {
	lists := model.ChoiceLists{}
	if asset == nil || asset.Content == nil {
		return lists
	}

	raw, _ := asset.Content.Get("choices")
	items, ok := raw.([]any)
	if !ok {
		return lists
	}

	sequence := 0
	for _, item := range items {
		choice, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			continue
		}

		listName := stringField(choice, "list_name")
		name := stringField(choice, "name")
		if listName == "" || name == "" {
			continue
		}

		if _, found := lists[listName]; !found {
			lists[listName] = map[string]model.Choice{}
		}

		label := firstLabel(choice)
		if label == "" {
			label = name
		}

		lists[listName][name] = model.Choice{Label: label, Sequence: sequence}
		sequence++
	}
	return lists
}

func stringField(item *orderedmap.OrderedMap, key string) string {
	if value, found := item.Get(key); found {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// firstLabel returns the first translation of the "label" array, if any.
func firstLabel(item *orderedmap.OrderedMap) string {
	value, found := item.Get("label")
	if !found {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
