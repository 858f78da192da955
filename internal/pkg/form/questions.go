package form

import (
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/kobotools/kobotab/internal/pkg/model"
)

type groupFrame struct {
	name   string
	repeat bool
}

// Questions walks the survey-item definitions of the form content and returns
// ordered question descriptors. Group and repeat boundaries maintain the path
// stack, items without a name (notes, markers) are skipped.
func Questions(asset *model.Asset) []model.Question {
	var questions []model.Question
	if asset == nil || asset.Content == nil {
		return questions
	}

	raw, _ := asset.Content.Get("survey")
	items, ok := raw.([]any)
	if !ok {
		return questions
	}

	var stack []groupFrame
	for _, item := range items {
		survey, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			continue
		}

		itemType := stringField(survey, "type")
		name := stringField(survey, "name")

		switch itemType {
		case "begin_group":
			stack = append(stack, groupFrame{name: name})
			continue
		case "begin_repeat":
			stack = append(stack, groupFrame{name: name, repeat: true})
			continue
		case "end_group", "end_repeat":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if itemType == "" || name == "" {
			continue
		}

		questions = append(questions, model.Question{
			Type:     itemType,
			Name:     name,
			Label:    firstLabel(survey),
			Path:     groupPath(stack),
			InRepeat: inRepeat(stack),
		})
	}
	return questions
}

func groupPath(stack []groupFrame) string {
	if len(stack) == 0 {
		return ""
	}
	names := make([]string, 0, len(stack))
	for _, frame := range stack {
		if frame.name != "" {
			names = append(names, frame.name)
		}
	}
	return strings.Join(names, "/")
}

func inRepeat(stack []groupFrame) bool {
	for _, frame := range stack {
		if frame.repeat {
			return true
		}
	}
	return false
}
