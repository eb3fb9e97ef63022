package jobs

import "sort"

// maxLastDateKey sorts the empty/unparsable sentinel after every real date.
const maxLastDateKey = "9999-12-31"

func lastDateKey(r Record) string {
	if r.LastDate == "" {
		return maxLastDateKey
	}
	return r.LastDate
}

// DedupeAndSort merges any mixture of records into the canonical cache order:
// duplicates by DedupeKey are dropped keeping the first occurrence, records
// with neither URL nor title are dropped, the rest are sorted ascending by
// last date (unknown dates last, ties keep first-seen order), and the result
// is truncated to maxRecords when maxRecords > 0. The operation is
// idempotent.
func DedupeAndSort(records []Record, maxRecords int) []Record {
	seen := make(map[string]struct{}, len(records))
	deduped := make([]Record, 0, len(records))
	for _, r := range records {
		key := r.DedupeKey()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, r)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return lastDateKey(deduped[i]) < lastDateKey(deduped[j])
	})
	if maxRecords > 0 && len(deduped) > maxRecords {
		deduped = deduped[:maxRecords]
	}
	return deduped
}
