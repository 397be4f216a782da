package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"obracalc.GO/config"
)

// StartCron schedules the built-in jobs from config.CronJobs plus everything
// added through Register, then starts the scheduler.
func StartCron() *cron.Cron {
	c := cron.New()
	for name, job := range config.CronJobs {
		run := job.Job
		if _, err := c.AddFunc(job.Schedule, func() { run() }); err != nil {
			log.Fatalf("cron: bad schedule for %s: %v", name, err)
		}
	}
	for name, job := range Jobs() {
		run := job.Run
		if _, err := c.AddFunc(job.Schedule, func() { run() }); err != nil {
			log.Fatalf("cron: bad schedule for %s: %v", name, err)
		}
	}
	c.Start()
	return c
}
