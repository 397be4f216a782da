package cart

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"obracalc.GO/config"
)

// Storage persists a cart item sequence under a key. Save is fire-and-
// forget from the ledger's perspective: errors are logged, never returned
// to the user path.
type Storage interface {
	Load(key string) ([]Item, error)
	Save(key string, items []Item)
}

// NewStorage picks the configured backend: Redis when reachable, else JSON
// files under the cart dir.
func NewStorage() Storage {
	if config.RedisClient != nil {
		return &RedisStorage{client: config.RedisClient}
	}
	dir := "var/carts"
	if config.AppConfig != nil && config.AppConfig.CartDir != "" {
		dir = config.AppConfig.CartDir
	}
	return &FileStorage{Dir: dir}
}

// RedisStorage keeps each cart as a JSON blob under its key.
type RedisStorage struct {
	client *redis.Client
}

func (s *RedisStorage) Load(key string) ([]Item, error) {
	data, err := s.client.Get(config.RedisCtx(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStorage) Save(key string, items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart: marshal %s: %v", key, err)
		return
	}
	if err := s.client.Set(config.RedisCtx(), key, data, 0).Err(); err != nil {
		log.Printf("cart: redis save %s: %v", key, err)
	}
}

// FileStorage keeps each cart as a JSON file named after its key.
type FileStorage struct {
	Dir string

	mkdirOnce sync.Once
}

func (s *FileStorage) path(key string) string {
	// keys look like cart:<session id>; keep the file name flat
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.Dir, name)
}

func (s *FileStorage) Load(key string) ([]Item, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStorage) Save(key string, items []Item) {
	s.mkdirOnce.Do(func() {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			log.Printf("cart: mkdir %s: %v", s.Dir, err)
		}
	})
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart: marshal %s: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		log.Printf("cart: save %s: %v", key, err)
	}
}

// MemoryStorage is an in-process backend for tests.
type MemoryStorage struct {
	mu sync.Mutex
	m  map[string][]Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{m: make(map[string][]Item)}
}

func (s *MemoryStorage) Load(key string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.m[key]))
	copy(items, s.m[key])
	return items, nil
}

func (s *MemoryStorage) Save(key string, items []Item) {
	s.mu.Lock()
	s.m[key] = items
	s.mu.Unlock()
}
