package migrator

import (
	"time"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
)

// advanceDate moves t forward by one rule interval. CUSTOM and unknown
// interval types leave the date unchanged.
func advanceDate(t time.Time, intervalType string, n int) time.Time {
	switch intervalType {
	case ivywallet.IntervalDaily:
		return t.AddDate(0, 0, n)
	case ivywallet.IntervalWeekly:
		return t.AddDate(0, 0, 7*n)
	case ivywallet.IntervalMonth:
		return addMonths(t, n)
	case ivywallet.IntervalYear:
		return addMonths(t, 12*n)
	}

	return t
}

// addMonths shifts t by a number of calendar months, clamping the day to
// the last valid day of the resulting month. Plain AddDate would normalize
// Jan 31 + 1 month into early March.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	first = first.AddDate(0, months, 0)

	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days of a month. Day zero of the following
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// reoccurrenceCode maps a rule interval type to the target reoccurrence
// code. Unknown interval types count as CUSTOM.
func reoccurrenceCode(intervalType string) int {
	switch intervalType {
	case ivywallet.IntervalDaily:
		return models.ReoccurrenceDaily
	case ivywallet.IntervalWeekly:
		return models.ReoccurrenceWeekly
	case ivywallet.IntervalMonth:
		return models.ReoccurrenceMonthly
	case ivywallet.IntervalYear:
		return models.ReoccurrenceYearly
	}

	return models.ReoccurrenceCustom
}
