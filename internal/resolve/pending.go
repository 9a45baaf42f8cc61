package resolve

import (
	"sync"
	"time"
)

// pendingRegistry holds candidate sets awaiting a human choice. Entries are
// bounded by a TTL so an unconfirmed barcode cannot stay stuck forever;
// expired entries are dropped lazily on access and by Sweep.
type pendingRegistry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]pendingEntry
}

type pendingEntry struct {
	set     *CandidateSet
	created time.Time
}

func newPendingRegistry(ttl time.Duration) *pendingRegistry {
	return &pendingRegistry{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]pendingEntry),
	}
}

// put records a candidate set for the barcode, replacing any earlier one.
func (p *pendingRegistry) put(barcode string, set *CandidateSet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[barcode] = pendingEntry{set: set, created: p.now()}
}

// take removes and returns the candidate set for the barcode.
// Returns ErrNoPending or ErrPendingExpired.
func (p *pendingRegistry) take(barcode string) (*CandidateSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[barcode]
	if !ok {
		return nil, ErrNoPending
	}
	delete(p.entries, barcode)
	if p.ttl > 0 && p.now().Sub(entry.created) > p.ttl {
		return nil, ErrPendingExpired
	}
	return entry.set, nil
}

// sweep drops expired entries and returns how many were removed.
func (p *pendingRegistry) sweep() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ttl <= 0 {
		return 0
	}
	cutoff := p.now().Add(-p.ttl)
	removed := 0
	for barcode, entry := range p.entries {
		if entry.created.Before(cutoff) {
			delete(p.entries, barcode)
			removed++
		}
	}
	return removed
}
