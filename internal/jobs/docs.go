// Package jobs provides scheduled background tasks for the delivery-time service.
//
// Jobs run on github.com/robfig/cron/v3 with seconds-enabled expressions.
//
// # Available Jobs
//
// OrderSchedulingJob stamps every order still in Created status with the delivery
// timestamp of the rule covering its placement time. Orders no rule covers are retried
// on the next run; already scheduled orders are never recomputed.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(scheduleHandler, "*/5 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// "No order waiting" and "no rules configured" are expected and not logged as errors.
// Anything else is logged and the job keeps its schedule.
package jobs
