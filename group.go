package taxlot

import (
	"cmp"
	"fmt"
	"slices"
)

// Group merges records that describe the same sale (same category,
// description, CUSIP, acquisition and sale dates) into a single record.
//
// The merged record is the first record of the group, with no reference
// or plan number (they identify a single lot), and whose Quantity,
// GrossProceeds and CostBasis are the exact sum of the group.
// Groups are returned in the order they are first seen.
func Group(records []Record) ([]Record, error) {
	var order []groupKey
	groups := make(map[groupKey][]Record)
	for _, r := range records {
		k := r.key()
		if _, exists := groups[k]; !exists {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	merged := make([]Record, 0, len(order))
	for _, k := range order {
		r, err := merge(groups[k])
		if err != nil {
			return nil, fmt.Errorf("cannot group %q sold on %s: %w", k.description, k.dateSold, err)
		}
		merged = append(merged, r)
	}
	return merged, nil
}

// merge returns a single record out of a non empty group.
func merge(group []Record) (Record, error) {
	r := group[0] // copy
	r.RefNumber, r.PlanNumber = "", ""

	var err error
	if r.Quantity, err = sumAmounts(group, func(r Record) string { return r.Quantity }); err != nil {
		return Record{}, err
	}
	if r.GrossProceeds, err = sumAmounts(group, func(r Record) string { return r.GrossProceeds }); err != nil {
		return Record{}, err
	}
	if r.CostBasis, err = sumAmounts(group, func(r Record) string { return r.CostBasis }); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Sort returns a copy of records sorted by category, description,
// acquisition date, sale date and reference number.
//
// Dates are compared as strings, as they are printed in the statement.
func Sort(records []Record) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Or(
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.Description, b.Description),
			cmp.Compare(a.DateAcquired, b.DateAcquired),
			cmp.Compare(a.DateSold, b.DateSold),
			cmp.Compare(a.RefNumber, b.RefNumber),
		)
	})
	return sorted
}
