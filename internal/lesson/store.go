package lesson

// Store aggregates lessons from an ordered list of sources into one
// deduplicated view. Sources are consulted in the order given (user lessons
// before built-ins before plugin sources); the first occurrence of an id
// wins and later duplicates are dropped.
//
// Load re-reads every source on each call. Lessons may change between guard
// invocations and the directories are small, so freshness beats caching.
type Store struct {
	Sources []Source
	Warn    WarnFunc
}

// NewStore builds a store over the given sources.
func NewStore(sources ...Source) *Store {
	return &Store{Sources: sources}
}

// Load returns the deduplicated, ordered lesson set.
func (s *Store) Load() []Lesson {
	warn := s.Warn
	if warn == nil {
		warn = func(string, ...any) {}
	}

	seen := make(map[string]bool)
	var out []Lesson
	for _, src := range s.Sources {
		for _, l := range src.Load(warn) {
			if seen[l.ID] {
				continue
			}
			seen[l.ID] = true
			out = append(out, l)
		}
	}
	return out
}

// Index returns the loaded lessons keyed by id, preserving Load order in
// the returned slice.
func (s *Store) Index() (ids map[string]*Lesson, ordered []Lesson) {
	ordered = s.Load()
	ids = make(map[string]*Lesson, len(ordered))
	for i := range ordered {
		ids[ordered[i].ID] = &ordered[i]
	}
	return ids, ordered
}

// StaticSource serves a fixed lesson slice. Used for built-in lessons and
// for plugin-supplied rule batches.
type StaticSource struct {
	Label   string
	Lessons []Lesson
}

func (s StaticSource) Name() string { return s.Label }

func (s StaticSource) Load(WarnFunc) []Lesson {
	out := make([]Lesson, len(s.Lessons))
	copy(out, s.Lessons)
	for i := range out {
		out[i].Severity = out[i].Severity.Normalize()
	}
	return out
}
