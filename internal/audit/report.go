package audit

import "sort"

// LessonStats aggregates guard outcomes for one lesson id.
type LessonStats struct {
	Checks    int
	Confirmed int
	Blocked   int
}

// Report is the read-side aggregation over the full audit history.
type Report struct {
	TotalEntries int
	PerLesson    map[string]LessonStats

	// Confirmed and Blocked count entries with at least one matched
	// lesson; entries that matched nothing do not affect compliance.
	Confirmed int
	Blocked   int
}

// BuildReport computes per-lesson counts and the global compliance inputs
// from parsed entries.
func BuildReport(entries []Entry) Report {
	r := Report{
		TotalEntries: len(entries),
		PerLesson:    make(map[string]LessonStats),
	}

	for _, e := range entries {
		if len(e.LessonsMatched) == 0 {
			continue
		}
		for _, id := range e.LessonsMatched {
			stats := r.PerLesson[id]
			stats.Checks++
			if e.Followed != nil {
				if *e.Followed {
					stats.Confirmed++
				} else {
					stats.Blocked++
				}
			}
			r.PerLesson[id] = stats
		}
		if e.Followed != nil {
			if *e.Followed {
				r.Confirmed++
			} else {
				r.Blocked++
			}
		}
	}
	return r
}

// ComplianceRate is confirmed / (confirmed + blocked), or 0 when no
// guarded entry has been resolved yet.
func (r Report) ComplianceRate() float64 {
	resolved := r.Confirmed + r.Blocked
	if resolved == 0 {
		return 0
	}
	return float64(r.Confirmed) / float64(resolved)
}

// LessonIDs returns the aggregated lesson ids in sorted order for stable
// report output.
func (r Report) LessonIDs() []string {
	ids := make([]string, 0, len(r.PerLesson))
	for id := range r.PerLesson {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
