package renamer

import (
	"fmt"
	"strings"

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/duplicate"
	"github.com/mei/stamp-files/internal/naming"
)

// Plan computes a RenamePlan for every scanned entry. Duplicate detection
// runs first so a surplus duplicate can be routed to its policy instead
// of being renamed. Collision resolution works per directory against the
// union of names already on disk and names claimed by earlier plans in
// the run; entries are planned in scan order, so the tie-break is
// deterministic.
func (e *Engine) Plan() error {
	if err := e.checkCancellation(); err != nil {
		return err
	}

	e.detectDuplicates()

	e.emit(PlanStarted{})

	resolvers := make(map[string]*naming.CollisionResolver, len(e.dirNames))
	resolverFor := func(dir string) *naming.CollisionResolver {
		if r, ok := resolvers[dir]; ok {
			return r
		}
		r := naming.NewCollisionResolver(e.dirNames[dir])
		resolvers[dir] = r
		return r
	}

	toRename := 0
	for _, entry := range e.entries {
		plan := e.planEntry(entry, resolverFor(entry.Dir))
		e.plans = append(e.plans, plan)
		if plan.Reason == Prefixed || plan.Reason == Restored {
			toRename++
		}
	}

	e.emit(PlanComplete{
		ToRename: toRename,
		ToSkip:   len(e.plans) - toRename,
		Total:    len(e.plans),
	})

	return nil
}

// planEntry decides what happens to a single file.
func (e *Engine) planEntry(entry *FileEntry, resolver *naming.CollisionResolver) *RenamePlan {
	if _, isSurplus := e.surplus[entryPath(entry)]; isSurplus && e.DuplicatePolicy != config.DuplicatesLog {
		return &RenamePlan{Entry: entry, Reason: Deduplicated}
	}

	sanitized := naming.Sanitize(entry.Name)
	if sanitized != entry.Name {
		e.log(LevelInfo, fmt.Sprintf("Sanitized %q to %q", entry.Name, sanitized), entryPath(entry))
	}

	var desired string
	var reason PlanReason

	switch e.Mode {
	case config.AddPrefix:
		// Strip any existing date prefix first so a stale date gets
		// re-stamped with the resolved one instead of stacking.
		base := naming.StripDatePrefix(sanitized)
		desired = naming.ApplyDatePrefix(entry.Timestamp.Format(naming.DateLayout), base)
		reason = Prefixed
	case config.RestorePrefix:
		if !naming.HasDatePrefix(sanitized) {
			return &RenamePlan{Entry: entry, Reason: Skipped, SkipWhy: "no date prefix to restore"}
		}
		desired = naming.StripDatePrefix(sanitized)
		reason = Restored
	}

	if desired == entry.Name {
		why := "already prefixed with resolved date"
		if e.Mode == config.RestorePrefix {
			why = "name unchanged by restore"
		}
		return &RenamePlan{Entry: entry, Reason: Skipped, SkipWhy: why}
	}

	// The file's current name becomes free once it is renamed away. Only
	// later-planned entries can claim it, and plans apply in this same
	// order, so the name is always vacated before it is reused.
	resolver.Release(entry.Name)
	target := resolver.Claim(desired)

	return &RenamePlan{Entry: entry, TargetName: target, Reason: reason}
}

// detectDuplicates hashes same-size files, records the duplicate groups,
// and marks every group member beyond the first as surplus. Discovered
// groups are always logged; whether surplus members are touched depends
// on the duplicate policy.
func (e *Engine) detectDuplicates() {
	candidates := make([]duplicate.Entry, 0, len(e.entries))
	for _, entry := range e.entries {
		candidates = append(candidates, duplicate.Entry{Path: entryPath(entry), Size: entry.Size})
	}

	groups, hashErrs := duplicate.Find(candidates, e.HashWorkers)
	for _, hashErr := range hashErrs {
		e.log(LevelWarning, fmt.Sprintf("Duplicate check incomplete: %v", hashErr), "")
	}

	e.groups = groups
	e.summary.DuplicateGroups = len(groups)
	e.surplus = make(map[string]struct{})

	if len(groups) == 0 {
		return
	}

	for _, group := range groups {
		e.log(LevelInfo, fmt.Sprintf("Duplicate content (%d bytes): %s",
			group.Size, strings.Join(group.Paths, ", ")), "")
		for _, path := range group.Paths[1:] {
			e.surplus[path] = struct{}{}
		}
	}

	e.emit(DuplicatesFound{Groups: groups})

	if e.DuplicatePolicy != config.DuplicatesLog {
		e.log(LevelInfo, fmt.Sprintf("Duplicate policy %q will handle %d surplus files",
			e.DuplicatePolicy, len(e.surplus)), "")
	}
}
