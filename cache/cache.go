package cache

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/config"
)

// The cache holds large objects that are expensive to build and safe to
// share once built, such as dictionaries. Keys are namespaced by the loader,
// e.g. "dictionary:twl".

type cache struct {
	sync.Mutex
	objects map[string]any
}

// LoadFunc builds the object for key.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	})
}

// Load returns the cached object for key, building it with loadFunc on a miss.
// A failed load leaves nothing behind, so a later call retries.
func Load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// Evict drops key from the cache. It returns whether the key was present.
func Evict(key string) bool {
	CreateGlobalObjectCache()
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	_, ok := GlobalObjectCache.objects[key]
	delete(GlobalObjectCache.objects, key)
	return ok
}

// EvictPrefix drops every key that starts with prefix and returns how many
// were dropped.
func EvictPrefix(prefix string) int {
	CreateGlobalObjectCache()
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	n := 0
	for key := range GlobalObjectCache.objects {
		if strings.HasPrefix(key, prefix) {
			delete(GlobalObjectCache.objects, key)
			n++
		}
	}
	log.Debug().Str("prefix", prefix).Int("evicted", n).Msg("evicting from cache")
	return n
}

// Open opens a file for a loader.
func Open(filename string) (*os.File, error) {
	log.Debug().Str("filename", filename).Msg("opening")
	return os.Open(filename)
}
