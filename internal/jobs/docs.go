// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with a leading seconds field.
//
// # Available Jobs
//
// 1. ResyncJob - every 5 seconds, reloads orders whose commit failed so the optimistic view matches the database
// 2. LowStockJob - every minute, logs ingredients at or below threshold and writes them to the stock cache
//
// # Usage
//
//	jobManager := jobs.NewJobManager(resyncHandler, lowStockHandler, jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next tick tries again. A job that fails
// to start stops any job already running.
package jobs
