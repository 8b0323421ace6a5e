package services

import (
	"sync"
	"time"
)

// DedupWindow is how long a (user, reel) view pair suppresses repeats.
const DedupWindow = 5 * time.Second

type dedupKey struct {
	userID uint
	reelID uint
}

// viewDeduper is a process-local cache that drops repeated views of the
// same reel by the same user inside the window. Each recorder owns its own
// instance; under multiple processes suppression is per-process, which is
// acceptable for telemetry.
type viewDeduper struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time // replaceable in tests
	seen   map[dedupKey]time.Time
}

func newViewDeduper(window time.Duration) *viewDeduper {
	return &viewDeduper{
		window: window,
		now:    time.Now,
		seen:   make(map[dedupKey]time.Time),
	}
}

// Register reports whether a view for the pair should be recorded. The
// check-and-set happens under one lock so near-simultaneous calls for the
// same pair cannot both pass. Accepted calls refresh the entry, extending
// its expiry; entries untouched for the window are removed.
func (d *viewDeduper) Register(userID, reelID uint) bool {
	k := dedupKey{userID: userID, reelID: reelID}

	d.mu.Lock()
	ts := d.now()
	if last, ok := d.seen[k]; ok && ts.Sub(last) < d.window {
		d.mu.Unlock()
		return false
	}
	d.seen[k] = ts
	d.mu.Unlock()

	time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if cur, ok := d.seen[k]; ok && cur.Equal(ts) {
			delete(d.seen, k)
		}
		d.mu.Unlock()
	})
	return true
}

func (d *viewDeduper) size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
