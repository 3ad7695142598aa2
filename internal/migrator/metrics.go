package migrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migration_runs_total",
		Help: "Number of migration runs that completed all stages.",
	})

	rowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migration_rows_skipped_total",
		Help: "Number of source rows skipped with a warning.",
	})
)
