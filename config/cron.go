package config

import (
	"obracalc.GO/cron/jobs"
)

// CronJob pairs a cron schedule expression with the function to run.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs is the built-in schedule. Custom packages add jobs through
// cron.Register instead of editing this map.
var CronJobs = map[string]CronJob{
	// Re-warms the catalog cache from the backend database.
	"catalogrefresh": {Schedule: "@every 15m", Job: jobs.CatalogRefreshJob},
}
