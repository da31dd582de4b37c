// Package jobs provides scheduled background tasks for the bakery service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field and run in
// the shop's time zone.
//
// # Available Jobs
//
// ExportJob runs the order export on EXPORT_SCHEDULE (default "0 0 4 * * *").
// An empty schedule disables it, which leaves exports to the export CLI.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewExportJob(exportHandler, schedule, loc, logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Export conflicts are logged as warnings since the next run picks the orders
// up again. Every other failure is logged as an error; the export itself has
// already written its ERROR log entry.
package jobs
