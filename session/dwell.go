package session

import (
	"sync"
	"time"
)

// DwellTimer arms a single deferred action at a time. Scheduling replaces any
// pending action and Cancel guarantees a stale callback never runs, even when
// the underlying timer has already fired and is waiting on the lock.
type DwellTimer struct {
	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
}

func NewDwellTimer() *DwellTimer {
	return &DwellTimer{}
}

func (d *DwellTimer) Schedule(delay time.Duration, f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
	}

	g := d.generation
	d.timer = time.AfterFunc(delay, func() {
		if !d.claim(g) {
			return
		}
		f()
	})
}

// claim ensures only the most recently scheduled callback runs and releases
// the timer handle once it does.
func (d *DwellTimer) claim(g uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.generation != g {
		return false
	}
	d.timer = nil
	return true
}

func (d *DwellTimer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *DwellTimer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}
