package scale

import (
	"sort"

	"github.com/jsphweid/scaledex/model"
)

// Rank orders matches by descending whole percent. Matches with the same
// percent keep the order they were found in, even if their raw accuracies
// differ (77.1% and 77.9% are a tie). The input slice is not modified.
func Rank(matches []model.WeightedScaleMatch) []model.WeightedScaleMatch {
	order := make([]int, len(matches))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := matches[order[i]], matches[order[j]]
		if a.Percent() != b.Percent() {
			return a.Percent() > b.Percent()
		}
		return order[i] < order[j]
	})

	res := make([]model.WeightedScaleMatch, len(matches))
	for i, idx := range order {
		res[i] = matches[idx]
	}
	return res
}
