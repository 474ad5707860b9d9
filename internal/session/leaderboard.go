package session

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

type Record struct {
	Size    int
	Elapsed time.Duration
	Nick    string
}

func (r Record) String() string {
	return fmt.Sprintf("Board size - %dx%d: %s min. by %s",
		r.Size, r.Size, FormatElapsed(r.Elapsed), r.Nick)
}

// Leaderboard keeps the best time per board size.
type Leaderboard struct {
	mu      sync.Mutex
	records map[int]Record
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{records: make(map[int]Record)}
}

// Submit records a win and reports whether it is the new best time for its
// board size. Times are compared at second resolution; a zero time is
// rejected.
func (l *Leaderboard) Submit(size int, elapsed time.Duration, nick string) bool {
	elapsed = elapsed.Truncate(time.Second)
	if elapsed <= 0 || !ValidSize(size) {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if best, ok := l.records[size]; ok && elapsed >= best.Elapsed {
		return false
	}
	l.records[size] = Record{Size: size, Elapsed: elapsed, Nick: nick}
	return true
}

func (l *Leaderboard) Best(size int) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[size]
	return r, ok
}

// Entries returns the records ordered by board size.
func (l *Leaderboard) Entries() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]Record, 0, len(l.records))
	for _, r := range l.records {
		entries = append(entries, r)
	}
	slices.SortFunc(entries, func(a, b Record) int {
		return a.Size - b.Size
	})
	return entries
}
