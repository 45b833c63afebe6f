package engine

// ttEntry caches the score computed for a position together with the
// remaining search depth it was computed at.
type ttEntry struct {
	Score float64
	Depth int
}

// TranspositionTable memoizes position scores for a single engine. Entries
// are keyed by zobrist fingerprint alone; side to move is not part of the
// key and entries carry no bound type, so cached scores are only reused for
// score-only returns, never as a move source. Entries are never evicted:
// the table lives and dies with the engine that owns it. Not safe for
// concurrent use.
type TranspositionTable struct {
	entries map[uint64]ttEntry
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]ttEntry)}
}

// Probe returns the cached score for key when the stored entry was searched
// at least as deep as requested. Shallower entries are misses.
func (t *TranspositionTable) Probe(key uint64, depth int) (float64, bool) {
	entry, ok := t.entries[key]
	if !ok || entry.Depth < depth {
		return 0, false
	}
	return entry.Score, true
}

// Store records the score for key, overwriting any previous entry.
func (t *TranspositionTable) Store(key uint64, score float64, depth int) {
	t.entries[key] = ttEntry{Score: score, Depth: depth}
}

func (t *TranspositionTable) Len() int {
	return len(t.entries)
}
