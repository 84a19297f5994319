package expiry

import (
	"regexp"
	"strings"
	"time"
)

// Priority is the prompt tier an ingredient gets when asking the AI gateway
// for recipe suggestions.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Ingredient is one entry of the AI prompt context.
type Ingredient struct {
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
}

var parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)

// NormalizeName strips trailing parenthetical annotations such as
// "tofu (optional)" so near-duplicate names collapse to one prompt key.
func NormalizeName(name string) string {
	return strings.TrimSpace(parenthetical.ReplaceAllString(name, ""))
}

// BuildPriorityContext classifies every unconsumed item into a prompt
// priority tier. Unlike RankForDisplay, fruit-category items are included
// here. Frozen items and items with unknown urgency are medium. Items
// expired or within two days are high, within five days medium, anything
// fresher low. Names colliding after normalization keep the highest
// priority seen.
func BuildPriorityContext(items []Item, now time.Time) []Ingredient {
	index := make(map[string]int)
	var out []Ingredient

	for _, item := range items {
		if item.Remains <= 0 {
			continue
		}

		priority := PriorityMedium
		if !item.Frozen {
			u := Evaluate(item, now)
			switch {
			case !u.Known:
				priority = PriorityMedium
			case u.RemainingDays <= 2:
				priority = PriorityHigh
			case u.RemainingDays <= 5:
				priority = PriorityMedium
			default:
				priority = PriorityLow
			}
		}

		name := NormalizeName(item.Name)
		if pos, ok := index[name]; ok {
			if priorityRank[priority] > priorityRank[out[pos].Priority] {
				out[pos].Priority = priority
			}
			continue
		}

		index[name] = len(out)
		out = append(out, Ingredient{Name: name, Priority: priority})
	}

	return out
}
