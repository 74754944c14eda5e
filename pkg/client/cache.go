package client

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	body      []byte
	fetchedAt time.Time
}

// memoryCache garde les réponses GET par chemin, avec péremption. Le choix
// d'un cache en mémoire locale est volontaire: le cache vit et meurt avec
// le client, redis reste une affaire du serveur.
type memoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newMemoryCache(ttl time.Duration) *memoryCache {
	return &memoryCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *memoryCache) get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	if time.Since(entry.fetchedAt) > c.ttl {
		delete(c.entries, path)
		return nil, false
	}
	return entry.body, true
}

func (c *memoryCache) set(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = cacheEntry{body: body, fetchedAt: time.Now()}
}

// invalidatePrefix retire toutes les entrées dont le chemin commence par
// le préfixe donné: l'élément et sa collection tombent ensemble.
func (c *memoryCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.entries {
		if strings.HasPrefix(path, prefix) {
			delete(c.entries, path)
		}
	}
}

func (c *memoryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
