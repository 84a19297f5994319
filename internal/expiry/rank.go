package expiry

import (
	"sort"
	"time"

	"github.com/freshkeep/backend/internal/model"
)

// Ranked is an item annotated with its urgency for display.
type Ranked struct {
	Item
	Urgency Urgency
}

// RankedList is the bounded cooking-page preview. TotalCount counts every
// distinct eligible name, including those cut off by the display bound.
type RankedList struct {
	Items        []Ranked
	DisplayNames []string
	TotalCount   int
}

// RankForDisplay selects and orders items for the cooking-assistant
// ingredient preview.
//
// Fruit-category items and consumed items are excluded. Non-frozen items
// come first, then frozen ones, each group sorted most urgent first.
// Frozen items are ranked by the same running shelf clock as everything
// else: freezing does not stop the urgency computation on this path.
// Duplicate names keep their most urgent instance, and at most maxCount
// unique names are returned.
func RankForDisplay(items []Item, now time.Time, maxCount int) RankedList {
	var eligible []Ranked
	for _, item := range items {
		if item.Remains <= 0 || item.Category == model.CategoryFruit {
			continue
		}
		eligible = append(eligible, Ranked{Item: item, Urgency: Evaluate(item, now)})
	}

	var normal, frozen []Ranked
	for _, r := range eligible {
		if r.Frozen {
			frozen = append(frozen, r)
		} else {
			normal = append(normal, r)
		}
	}

	sort.SliceStable(normal, func(i, j int) bool {
		return normal[i].Urgency.Ratio < normal[j].Urgency.Ratio
	})
	sort.SliceStable(frozen, func(i, j int) bool {
		return frozen[i].Urgency.Ratio < frozen[j].Urgency.Ratio
	})

	ordered := append(normal, frozen...)

	seen := make(map[string]bool, len(ordered))
	list := RankedList{}
	for _, r := range ordered {
		if seen[r.Name] {
			continue
		}
		if len(list.Items) >= maxCount {
			break
		}
		seen[r.Name] = true
		list.Items = append(list.Items, r)
		list.DisplayNames = append(list.DisplayNames, r.Name)
	}

	distinct := make(map[string]bool, len(eligible))
	for _, r := range eligible {
		distinct[r.Name] = true
	}
	list.TotalCount = len(distinct)

	return list
}
