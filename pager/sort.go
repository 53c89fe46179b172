package pager

import "sort"

// SortByPublished returns a new slice sorted by PublishedAt ascending.
// The sort is stable: items with equal timestamps keep their API order.
// The input slice is not modified.
func SortByPublished(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.Before(sorted[j].PublishedAt)
	})
	return sorted
}
