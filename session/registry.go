package session

import (
	"errors"
	"sync"

	"github.com/Chronicle20/atlas-tenant"
)

var ErrSessionActive = errors.New("drag session already active")

type Key struct {
	tenant      tenant.Model
	characterId uint32
}

func NewKey(t tenant.Model, characterId uint32) Key {
	return Key{tenant: t, characterId: characterId}
}

func (k Key) Tenant() tenant.Model {
	return k.tenant
}

func (k Key) CharacterId() uint32 {
	return k.characterId
}

// Registry holds every live drag session and the hover dwell timer that rides
// alongside it. A character gets at most one session, which is what makes a
// second pickup fail while the first item is still held.
type Registry struct {
	lock     sync.RWMutex
	sessions map[Key]Model
	dwells   map[Key]*DwellTimer
}

var (
	registryInstance *Registry
	registryOnce     sync.Once
)

func GetRegistry() *Registry {
	registryOnce.Do(func() {
		registryInstance = &Registry{
			sessions: make(map[Key]Model),
			dwells:   make(map[Key]*DwellTimer),
		}
	})
	return registryInstance
}

func (r *Registry) Begin(t tenant.Model, characterId uint32, m Model) (Model, error) {
	key := NewKey(t, characterId)

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.sessions[key]; exists {
		return Model{}, ErrSessionActive
	}
	r.sessions[key] = m
	return m, nil
}

func (r *Registry) Get(t tenant.Model, characterId uint32) (Model, bool) {
	key := NewKey(t, characterId)

	r.lock.RLock()
	defer r.lock.RUnlock()

	m, exists := r.sessions[key]
	return m, exists
}

func (r *Registry) SetHover(t tenant.Model, characterId uint32, target HoverTarget) (Model, error) {
	key := NewKey(t, characterId)

	r.lock.Lock()
	defer r.lock.Unlock()

	m, exists := r.sessions[key]
	if !exists {
		return Model{}, errors.New("no active drag session")
	}
	m = Clone(m).SetHover(target).Build()
	r.sessions[key] = m
	return m, nil
}

func (r *Registry) ClearHover(t tenant.Model, characterId uint32) (Model, bool) {
	key := NewKey(t, characterId)

	r.lock.Lock()
	defer r.lock.Unlock()

	m, exists := r.sessions[key]
	if !exists {
		return Model{}, false
	}
	m = Clone(m).ClearHover().Build()
	r.sessions[key] = m
	return m, true
}

// End removes the session, returning what was held so the caller can stamp a
// terminal state onto the emitted event.
func (r *Registry) End(t tenant.Model, characterId uint32) (Model, bool) {
	key := NewKey(t, characterId)

	r.lock.Lock()
	defer r.lock.Unlock()

	m, exists := r.sessions[key]
	if !exists {
		return Model{}, false
	}
	delete(r.sessions, key)
	return m, true
}

// DwellTimer returns the character's hover timer, creating it on first use.
// Timers are retained across sessions so a rapid hover after a drop reuses
// the same handle.
func (r *Registry) DwellTimer(t tenant.Model, characterId uint32) *DwellTimer {
	key := NewKey(t, characterId)

	r.lock.Lock()
	defer r.lock.Unlock()

	d, exists := r.dwells[key]
	if !exists {
		d = NewDwellTimer()
		r.dwells[key] = d
	}
	return d
}

// ReleaseDwell cancels and drops the character's hover timer.
func (r *Registry) ReleaseDwell(t tenant.Model, characterId uint32) {
	key := NewKey(t, characterId)

	r.lock.Lock()
	d, exists := r.dwells[key]
	if exists {
		delete(r.dwells, key)
	}
	r.lock.Unlock()

	if exists {
		d.Cancel()
	}
}

// StopAll cancels every pending dwell timer. Wired into service teardown so
// no callback fires into a closing process.
func (r *Registry) StopAll() {
	r.lock.Lock()
	ds := make([]*DwellTimer, 0, len(r.dwells))
	for key, d := range r.dwells {
		ds = append(ds, d)
		delete(r.dwells, key)
	}
	r.lock.Unlock()

	for _, d := range ds {
		d.Cancel()
	}
}
