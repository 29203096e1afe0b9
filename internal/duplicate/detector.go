// Package duplicate identifies files with identical content by grouping
// on size and then on an MD5 content digest.
package duplicate

import (
	"crypto/md5" //nolint:gosec // Content grouping, not authentication
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// DefaultWorkers bounds the number of concurrent hash computations so the
// detector does not overwhelm disk I/O.
const DefaultWorkers = 4

// Entry is one candidate file for duplicate detection.
type Entry struct {
	Path string
	Size int64
}

// Group is a set of byte-identical files. Every group has at least two
// members; Paths are sorted ascending.
type Group struct {
	Size  int64
	Hash  string
	Paths []string
}

// Find returns all duplicate groups among entries. Phase one buckets by
// exact size; phase two hashes only the members of multi-file buckets,
// in parallel across at most workers goroutines. Results are merged by
// digest, not by completion order, so output is deterministic. Files
// that cannot be hashed are dropped from consideration and reported in
// the returned error slice.
func Find(entries []Entry, workers int) ([]Group, []error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	// Phase 1: size buckets.
	bySize := make(map[int64][]Entry)
	for _, entry := range entries {
		bySize[entry.Size] = append(bySize[entry.Size], entry)
	}

	var candidates []Entry
	for _, bucket := range bySize {
		if len(bucket) > 1 {
			candidates = append(candidates, bucket...)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	// Phase 2: hash the candidates with a bounded worker pool.
	type hashResult struct {
		entry Entry
		hash  string
		err   error
	}

	jobs := make(chan Entry)
	results := make(chan hashResult)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range jobs {
				hash, err := hashFile(entry.Path)
				results <- hashResult{entry: entry, hash: hash, err: err}
			}
		}()
	}

	go func() {
		for _, entry := range candidates {
			jobs <- entry
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	type key struct {
		size int64
		hash string
	}

	byContent := make(map[key][]string)
	var hashErrs []error

	for res := range results {
		if res.err != nil {
			hashErrs = append(hashErrs, res.err)
			continue
		}
		k := key{size: res.entry.Size, hash: res.hash}
		byContent[k] = append(byContent[k], res.entry.Path)
	}

	var groups []Group
	for k, paths := range byContent {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		groups = append(groups, Group{Size: k.size, Hash: k.hash, Paths: paths})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Paths[0] < groups[j].Paths[0]
	})
	sort.Slice(hashErrs, func(i, j int) bool {
		return hashErrs[i].Error() < hashErrs[j].Error()
	})

	return groups, hashErrs
}

// hashFile computes the hex MD5 digest of the file's content.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	defer f.Close()

	hasher := md5.New() //nolint:gosec // Content grouping, not authentication
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
