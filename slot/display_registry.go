package slot

import (
	"sync"

	"github.com/Chronicle20/atlas-tenant"
)

type displayKey struct {
	tenant      tenant.Model
	characterId uint32
}

// DisplayRegistry holds the per-character metadata labels the bridge asks the
// overlay to render. Entries live only as long as the overlay session and are
// never persisted.
type DisplayRegistry struct {
	lock   sync.RWMutex
	labels map[displayKey]map[string]string
}

var (
	displayInstance *DisplayRegistry
	displayOnce     sync.Once
)

func GetDisplayRegistry() *DisplayRegistry {
	displayOnce.Do(func() {
		displayInstance = &DisplayRegistry{
			labels: make(map[displayKey]map[string]string),
		}
	})
	return displayInstance
}

func (r *DisplayRegistry) Add(t tenant.Model, characterId uint32, metadata string, label string) {
	key := displayKey{tenant: t, characterId: characterId}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.labels[key]; !exists {
		r.labels[key] = make(map[string]string)
	}
	r.labels[key][metadata] = label
}

func (r *DisplayRegistry) GetAll(t tenant.Model, characterId uint32) map[string]string {
	key := displayKey{tenant: t, characterId: characterId}

	r.lock.RLock()
	defer r.lock.RUnlock()

	labels, exists := r.labels[key]
	if !exists {
		return nil
	}
	res := make(map[string]string, len(labels))
	for k, v := range labels {
		res[k] = v
	}
	return res
}

func (r *DisplayRegistry) RemoveForCharacter(t tenant.Model, characterId uint32) {
	key := displayKey{tenant: t, characterId: characterId}

	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.labels, key)
}
