// Package jobs holds the cron job functions wired in config.CronJobs.
package jobs

import (
	"log"
	"sync"

	"obracalc.GO/catalog"
)

var (
	mu    sync.Mutex
	store *catalog.Store
)

// SetCatalogStore hands the job its refresh target. Called once at startup;
// until then CatalogRefreshJob is a no-op.
func SetCatalogStore(s *catalog.Store) {
	mu.Lock()
	store = s
	mu.Unlock()
}

// CatalogRefreshJob re-reads the catalog from the backend so remote edits
// land without a restart.
func CatalogRefreshJob(args ...string) {
	mu.Lock()
	s := store
	mu.Unlock()
	if s == nil {
		return
	}
	if err := s.Refresh(); err != nil {
		log.Printf("cron catalogrefresh: %v", err)
		return
	}
	log.Println("cron catalogrefresh: catalog reloaded")
}
