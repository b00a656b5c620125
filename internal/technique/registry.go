package technique

import (
	"sync"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Registry holds generated techniques so they can be resolved by id after
// creation. It satisfies both combat.SignatureGenerator (Generate) and
// combat.TechniqueSource (TechniqueByID), letting combat treat generated
// techniques the same way it treats catalog ones.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]catalog.Technique
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]catalog.Technique)}
}

// Generate builds a technique deterministically from the given inputs,
// stores it, and returns its id. Calling Generate twice with the same
// inputs overwrites the entry with an identical value.
func (r *Registry) Generate(wallet, classID, tier string) (string, error) {
	tech := generate(wallet, classID, tier)

	r.mu.Lock()
	r.byID[tech.ID] = tech
	r.mu.Unlock()

	return tech.ID, nil
}

func (r *Registry) TechniqueByID(id string) (catalog.Technique, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tech, ok := r.byID[id]
	if !ok {
		return catalog.Technique{}, rpgerr.Newf(rpgerr.CodeNotFound, "generated technique %q not found", id)
	}
	return tech, nil
}
