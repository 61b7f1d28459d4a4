package inventory

import (
	"sync"

	"github.com/Chronicle20/atlas-tenant"
)

type visibilityKey struct {
	tenant      tenant.Model
	characterId uint32
}

// VisibilityRegistry remembers whether a character's overlay is currently
// shown. The flag is volatile session state, so it lives in memory alongside
// the drag registry instead of the mirror tables.
type VisibilityRegistry struct {
	lock    sync.RWMutex
	visible map[visibilityKey]bool
}

var (
	visibilityInstance *VisibilityRegistry
	visibilityOnce     sync.Once
)

func GetVisibilityRegistry() *VisibilityRegistry {
	visibilityOnce.Do(func() {
		visibilityInstance = &VisibilityRegistry{
			visible: make(map[visibilityKey]bool),
		}
	})
	return visibilityInstance
}

func (r *VisibilityRegistry) Set(t tenant.Model, characterId uint32, visible bool) {
	key := visibilityKey{tenant: t, characterId: characterId}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.visible[key] = visible
}

func (r *VisibilityRegistry) Get(t tenant.Model, characterId uint32) bool {
	key := visibilityKey{tenant: t, characterId: characterId}

	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.visible[key]
}

func (r *VisibilityRegistry) RemoveForCharacter(t tenant.Model, characterId uint32) {
	key := visibilityKey{tenant: t, characterId: characterId}

	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.visible, key)
}
