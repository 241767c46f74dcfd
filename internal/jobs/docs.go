// Package jobs provides scheduled background tasks of the tracking service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OrderStatusMetricsJob counts orders per status across every owner and
// publishes the result on the tracking_orders_by_status gauge.
//
// # Usage
//
//	job := jobs.NewOrderStatusMetricsJob(countHandler, m, "*/30 * * * * *", logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
