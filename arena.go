package svgfx

// Handle addresses a filter stored in a FilterArena. Handles are plain
// values: holding one keeps nothing alive, and a handle whose entry was
// removed simply fails lookup. The zero Handle never resolves.
type Handle struct {
	index int
	gen   uint32
}

// IsZero reports whether the handle is the zero value.
func (h Handle) IsZero() bool { return h.gen == 0 }

type arenaEntry struct {
	spec     *FilterSpec
	fallback Handle
	gen      uint32
	live     bool
}

// FilterArena owns the filters referenced by a document's elements.
// An element's filter attribute may name a chain of filters where later
// entries serve as fallbacks for earlier ones; the arena stores those
// links as handles rather than pointers, so a removed filter breaks the
// chain cleanly instead of dangling.
type FilterArena struct {
	entries []arenaEntry
	free    []int
	nextGen uint32
}

// NewFilterArena returns an empty arena.
func NewFilterArena() *FilterArena {
	return &FilterArena{nextGen: 1}
}

// Insert stores a filter and returns its handle. fallback, which may be
// the zero Handle, names the filter to try when this one cannot be
// applied.
func (a *FilterArena) Insert(spec *FilterSpec, fallback Handle) Handle {
	gen := a.nextGen
	a.nextGen++

	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.entries[idx] = arenaEntry{spec: spec, fallback: fallback, gen: gen, live: true}
	} else {
		idx = len(a.entries)
		a.entries = append(a.entries, arenaEntry{spec: spec, fallback: fallback, gen: gen, live: true})
	}
	return Handle{index: idx, gen: gen}
}

// Get returns the filter for a handle. Lookup fails for the zero handle
// and for handles whose entry was removed, even if the slot has since
// been reused.
func (a *FilterArena) Get(h Handle) (*FilterSpec, bool) {
	e, ok := a.entry(h)
	if !ok {
		return nil, false
	}
	return e.spec, true
}

// Fallback returns the fallback handle recorded for h.
func (a *FilterArena) Fallback(h Handle) (Handle, bool) {
	e, ok := a.entry(h)
	if !ok {
		return Handle{}, false
	}
	return e.fallback, true
}

// Remove deletes the entry for h. Handles to the entry become stale;
// entries naming it as a fallback keep their link, which from then on
// fails lookup like any stale handle.
func (a *FilterArena) Remove(h Handle) {
	if e, ok := a.entry(h); ok {
		*e = arenaEntry{}
		a.free = append(a.free, h.index)
	}
}

// Resolve walks the fallback chain starting at h and returns the first
// filter the usable predicate accepts. A nil predicate accepts every
// filter. Stale links end the walk; cycles introduced by author error
// are detected and fail resolution.
func (a *FilterArena) Resolve(h Handle, usable func(*FilterSpec) bool) (*FilterSpec, bool) {
	seen := make(map[Handle]struct{})
	for !h.IsZero() {
		if _, dup := seen[h]; dup {
			return nil, false
		}
		seen[h] = struct{}{}

		e, ok := a.entry(h)
		if !ok {
			return nil, false
		}
		if usable == nil || usable(e.spec) {
			return e.spec, true
		}
		h = e.fallback
	}
	return nil, false
}

func (a *FilterArena) entry(h Handle) (*arenaEntry, bool) {
	if h.IsZero() || h.index < 0 || h.index >= len(a.entries) {
		return nil, false
	}
	e := &a.entries[h.index]
	if !e.live || e.gen != h.gen {
		return nil, false
	}
	return e, true
}
