// Package bulkimport drives validation and duplicate-checking across a
// batch of raw candidate records, partitioning them into accepted items
// and per-item error strings. It never talks to the store's write path;
// persistence of the accepted batch is the caller's job.
package bulkimport

import "fmt"

// Result partitions one batch: ValidItems keeps original input order,
// Errors name the 1-based position of each rejected item.
type Result[T any] struct {
	ValidItems []T
	Errors     []string
}

// Run processes items strictly in input order. A validation failure
// records an error and moves on; it never aborts the batch. When
// isDuplicate is non-nil it is consulted after validation, and a hit is
// recorded as "Duplicate entry" tagged with the item's identifier.
//
// Duplicate checks see only the store's committed state, not items already
// accepted within this batch; a same-batch collision is accepted here and
// left for the store's batch insert to reject.
func Run[T any](
	items []any,
	parse func(any) (*T, error),
	isDuplicate func(*T) bool,
	label string,
	identifier func(*T) string,
) Result[T] {
	var res Result[T]
	for i, raw := range items {
		item, err := parse(raw)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s %d: %s", label, i+1, err.Error()))
			continue
		}
		if isDuplicate != nil && isDuplicate(item) {
			suffix := ""
			if identifier != nil {
				suffix = fmt.Sprintf(" (%s)", identifier(item))
			}
			res.Errors = append(res.Errors, fmt.Sprintf("%s %d%s: Duplicate entry", label, i+1, suffix))
			continue
		}
		res.ValidItems = append(res.ValidItems, *item)
	}
	return res
}
