package main

import "strings"

// History is the ordered color ledger, most recent first. Entries are
// formatted rgba strings and are unique.
type History struct {
	entries []string
	limit   int
}

func NewHistory(entries []string) *History {
	h := &History{limit: maxHistory}
	h.Merge(entries)
	return h
}

// Add moves entry to the front, dropping any earlier copy of it.
func (h *History) Add(entry string) {
	kept := make([]string, 0, len(h.entries)+1)
	kept = append(kept, entry)
	for _, e := range h.entries {
		if e != entry {
			kept = append(kept, e)
		}
	}
	h.entries = truncate(kept, h.limit)
}

func (h *History) Clear() {
	h.entries = nil
}

// Merge puts incoming ahead of the existing entries, keeps the first
// occurrence of every value and truncates to the limit.
func (h *History) Merge(incoming []string) {
	seen := make(map[string]bool, len(incoming)+len(h.entries))
	merged := make([]string, 0, len(incoming)+len(h.entries))
	for _, list := range [][]string{incoming, h.entries} {
		for _, e := range list {
			if seen[e] {
				continue
			}
			seen[e] = true
			merged = append(merged, e)
		}
	}
	h.entries = truncate(merged, h.limit)
}

func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

func truncate(list []string, limit int) []string {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

// LooksLikeRGBA is the shape check applied to imported rows.
func LooksLikeRGBA(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "rgba")
}
