package catalog

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"obracalc.GO/core/cache"
)

// Cache keys and tag for remote catalog snapshots.
const (
	cacheKeyProducts   = "catalog:products"
	cacheKeyCategories = "catalog:categories"
	cacheKeyRates      = "catalog:rates"
	cacheTag           = "catalog"

	// remote snapshots are considered fresh for this many seconds; the
	// catalogrefresh cron job re-warms before expiry
	cacheTTL = 30 * 60
)

// Store serves catalog reads, preferring remote data when present and
// non-empty and degrading to the static list otherwise. All lookups are
// total: "not found" is a return value, never a panic or error.
type Store struct {
	remote *RemoteCatalog // nil when no backend DB is configured
	cache  *cache.Cache
}

// NewStore builds a store over an optional backend DB. Pass nil to run
// purely on the static catalog.
func NewStore(db *gorm.DB) *Store {
	s := &Store{cache: cache.GetInstance()}
	if db != nil {
		s.remote = NewRemoteCatalog(db)
	}
	return s
}

// NewStaticStore returns a store without a remote backend (tests, CLI).
func NewStaticStore() *Store {
	return &Store{cache: cache.NewCache()}
}

// GetAll returns the active product list.
func (s *Store) GetAll() []Product {
	if products, ok := s.remoteProducts(); ok {
		return products
	}
	return StaticProducts()
}

// GetByID returns the product with the given id, or (Product{}, false).
func (s *Store) GetByID(id string) (Product, bool) {
	for _, p := range s.GetAll() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// GetByCategory returns all products of a category, preserving list order.
func (s *Store) GetByCategory(category string) []Product {
	var out []Product
	for _, p := range s.GetAll() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetCategories returns unique category names in first-seen order.
func (s *Store) GetCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.GetAll() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// GetConsumptionRate returns the rate for a product, or (rate, false).
func (s *Store) GetConsumptionRate(productID string) (ConsumptionRate, bool) {
	for _, r := range s.rates() {
		if r.ProductID == productID {
			return r, true
		}
	}
	return ConsumptionRate{}, false
}

// GetRates returns the active consumption-rate table.
func (s *Store) GetRates() []ConsumptionRate {
	return s.rates()
}

// Search returns products whose name, description or category contains the
// query, case-insensitively. Elasticsearch-backed search lives in
// SearchService; this is the always-available fallback scan.
func (s *Store) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Product
	for _, p := range s.GetAll() {
		hay := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
		if strings.Contains(hay, q) {
			out = append(out, p)
		}
	}
	return out
}

// Refresh re-fetches the remote catalog into the cache. No-op without a
// remote backend. Used by the catalogrefresh cron job.
func (s *Store) Refresh() error {
	if s.remote == nil {
		return nil
	}
	products, err := s.remote.FetchProducts()
	if err != nil {
		return err
	}
	rates, err := s.remote.FetchRates()
	if err != nil {
		return err
	}
	s.cache.Set(cacheKeyProducts, products, cacheTTL, []string{cacheTag})
	s.cache.Set(cacheKeyRates, rates, cacheTTL, []string{cacheTag})
	return nil
}

// Invalidate drops cached remote snapshots (after imports).
func (s *Store) Invalidate() {
	s.cache.DeleteByTag(cacheTag)
}

// remoteProducts returns (products, true) when the remote backend yielded a
// non-empty list; fetch failures are logged and degrade to the static list.
func (s *Store) remoteProducts() ([]Product, bool) {
	if s.remote == nil {
		return nil, false
	}
	if v, ok := s.cache.Get(cacheKeyProducts); ok {
		if products, ok := v.([]Product); ok && len(products) > 0 {
			return products, true
		}
		return nil, false
	}
	products, err := s.remote.FetchProducts()
	if err != nil {
		log.Printf("catalog: remote fetch failed, using static list: %v", err)
		return nil, false
	}
	s.cache.Set(cacheKeyProducts, products, cacheTTL, []string{cacheTag})
	if len(products) == 0 {
		return nil, false
	}
	return products, true
}

func (s *Store) rates() []ConsumptionRate {
	if s.remote == nil {
		return StaticRates()
	}
	// Rates follow the product source: static products mean static rates.
	if _, ok := s.remoteProducts(); !ok {
		return StaticRates()
	}
	if v, ok := s.cache.Get(cacheKeyRates); ok {
		if rates, ok := v.([]ConsumptionRate); ok && len(rates) > 0 {
			return rates
		}
	}
	rates, err := s.remote.FetchRates()
	if err != nil {
		log.Printf("catalog: remote rates fetch failed, using static table: %v", err)
		return StaticRates()
	}
	s.cache.Set(cacheKeyRates, rates, cacheTTL, []string{cacheTag})
	if len(rates) == 0 {
		return StaticRates()
	}
	return rates
}
