package hook

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Hook)
	mu       sync.RWMutex
)

// Register adds a hook to the registry. Hooks register themselves in
// package init; a duplicate id is a programming error and panics.
func Register(h Hook) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[h.ID()]; exists {
		panic(fmt.Sprintf("hook %s already registered", h.ID()))
	}
	registry[h.ID()] = h
}

func List() []Hook {
	mu.RLock()
	defer mu.RUnlock()
	var hooks []Hook
	for _, h := range registry {
		hooks = append(hooks, h)
	}
	sort.Slice(hooks, func(i, j int) bool {
		return hooks[i].ID() < hooks[j].ID()
	})
	return hooks
}

func Get(id string) (Hook, error) {
	mu.RLock()
	defer mu.RUnlock()
	if h, ok := registry[id]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("hook not found: %s", id)
}
