// Package entity contains the core business objects of the project.
package entity

import "time"

// DateDimension is one row of the warehouse date dimension seed, covering a
// single calendar day with pre-computed calendar buckets.
type DateDimension struct {
	DateID        string    // Surrogate key in YYYYMMDD form.
	DateDay       time.Time // The calendar day itself.
	DateWeek      time.Time // First day (Monday) of the ISO week containing DateDay.
	DateMonth     time.Time // First day of the month containing DateDay.
	DateQuarter   time.Time // First day of the quarter containing DateDay.
	DateYear      time.Time // First day of the year containing DateDay.
	DayOfWeek     int       // Monday = 1 ... Sunday = 7.
	DayOfMonth    int
	WeekOfYear    int // ISO week number.
	MonthOfYear   int
	QuarterOfYear int
	Year          int
	DayName       string // English weekday name, e.g. "Monday".
	MonthName     string // English month name, e.g. "January".
	IsWeekend     bool
	IsHoliday     bool // Always false; holiday calendars are out of scope.
}
