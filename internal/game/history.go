package game

import "time"

type HistoryEntry struct {
	Round     int
	Player    PlayerColor
	Move      Move
	Score     float64
	ThinkTime time.Duration
	Depth     int
}

type History struct {
	entries []HistoryEntry
}

func (h *History) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h History) Size() int {
	return len(h.entries)
}

func (h History) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

func (h History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
