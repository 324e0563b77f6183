package search

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

type queryCount struct {
	display string
	count   int
}

// popularTracker counts case-folded queries and reports the most frequent ones
type popularTracker struct {
	mu     sync.Mutex
	counts map[string]*queryCount
	seeds  []string
}

func newPopularTracker(seeds []string) *popularTracker {
	return &popularTracker{
		counts: make(map[string]*queryCount),
		seeds:  append([]string(nil), seeds...),
	}
}

func (p *popularTracker) record(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	key := cases.Fold().String(query)

	p.mu.Lock()
	defer p.mu.Unlock()

	if qc, ok := p.counts[key]; ok {
		qc.count++
		return
	}
	if len(p.counts) >= MaxTrackedQueries {
		p.evictRarestLocked()
	}
	p.counts[key] = &queryCount{display: query, count: 1}
}

// top returns up to n queries, most frequent first, padded with the seed list
func (p *popularTracker) top(n int) []string {
	p.mu.Lock()
	ranked := make([]queryCount, 0, len(p.counts))
	for _, qc := range p.counts {
		ranked = append(ranked, *qc)
	}
	p.mu.Unlock()

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].display < ranked[j].display
	})

	fold := cases.Fold()
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	add := func(q string) {
		key := fold.String(q)
		if len(out) < n && !seen[key] {
			seen[key] = true
			out = append(out, q)
		}
	}
	for _, qc := range ranked {
		add(qc.display)
	}
	for _, s := range p.seeds {
		add(s)
	}
	return out
}

func (p *popularTracker) evictRarestLocked() {
	var rarest string
	lowest := -1
	for k, qc := range p.counts {
		if lowest < 0 || qc.count < lowest {
			rarest, lowest = k, qc.count
		}
	}
	delete(p.counts, rarest)
}

// decay halves every count and forgets queries that reach zero.
// It returns the number of queries still tracked.
func (p *popularTracker) decay() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	for k, qc := range p.counts {
		qc.count /= 2
		if qc.count == 0 {
			delete(p.counts, k)
		}
	}
	return len(p.counts)
}
