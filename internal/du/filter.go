package du

import "sort"

// FilterDepth returns the records whose depth does not exceed max. A max of 0
// keeps only the root record.
func FilterDepth(records []SizeRecord, max int) []SizeRecord {
	out := make([]SizeRecord, 0, len(records))

	for _, rec := range records {
		if rec.Depth <= max {
			out = append(out, rec)
		}
	}

	return out
}

// FilterMinSize returns the records of at least min bytes. The root record
// (depth 0) is always kept so a run never reports nothing. Totals are not
// affected, only which records are reported.
func FilterMinSize(records []SizeRecord, min uint64) []SizeRecord {
	if min == 0 {
		return records
	}

	out := make([]SizeRecord, 0, len(records))

	for _, rec := range records {
		if rec.Size >= min || rec.Depth == 0 {
			out = append(out, rec)
		}
	}

	return out
}

// SortBySize orders records by ascending size, in place. The sort is stable:
// records of equal size keep their traversal order.
func SortBySize(records []SizeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Size < records[j].Size
	})
}
