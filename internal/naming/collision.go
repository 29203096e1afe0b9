package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CollisionResolver tracks target names claimed during a single run and
// resolves duplicates by appending " (N)" suffixes before the extension.
// It is scoped to one directory: seed it with the names already present,
// then Claim desired names in enumeration order.
type CollisionResolver struct {
	taken    map[string]struct{}
	counters map[string]int // desired name → next suffix to try
}

// NewCollisionResolver creates a resolver with the given names already
// taken (typically the directory's current entries minus the files being
// renamed).
func NewCollisionResolver(taken []string) *CollisionResolver {
	cr := &CollisionResolver{
		taken:    make(map[string]struct{}, len(taken)),
		counters: make(map[string]int),
	}
	for _, name := range taken {
		cr.taken[name] = struct{}{}
	}
	return cr
}

// Taken reports whether name has been claimed or seeded.
func (cr *CollisionResolver) Taken(name string) bool {
	_, ok := cr.taken[name]
	return ok
}

// Release frees a previously seeded name, making it claimable again.
// Used when the file currently holding a name is itself being renamed.
func (cr *CollisionResolver) Release(name string) {
	delete(cr.taken, name)
}

// Claim returns desired if it is free, otherwise the first free
// "stem (N).ext" variant with N counting up from 1. The returned name is
// recorded so no later Claim in the same run can reuse it. The taken set
// is finite, so the search always terminates.
func (cr *CollisionResolver) Claim(desired string) string {
	if !cr.Taken(desired) {
		cr.taken[desired] = struct{}{}
		return desired
	}

	ext := filepath.Ext(desired)
	stem := strings.TrimSuffix(desired, ext)

	counter := cr.counters[desired]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := fmt.Sprintf("%s (%d)%s", stem, counter, ext)
		if !cr.Taken(candidate) {
			cr.counters[desired] = counter + 1
			cr.taken[candidate] = struct{}{}
			return candidate
		}
		counter++
	}
}
