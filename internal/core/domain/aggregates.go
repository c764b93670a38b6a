package domain

import "time"

// SummaryStats describes the filtered set at a glance.
type SummaryStats struct {
	// TotalPosts is the number of posts in the filtered set.
	TotalPosts int

	// UniqueAuthors is the distinct author count.
	UniqueAuthors int

	// Platforms is the distinct platform count.
	Platforms int

	// AvgScore is the mean Score, 0 for an empty set.
	AvgScore float64

	// TotalComments is the summed NumComments.
	TotalComments int

	// DateRange is a human-readable "min to max" date span,
	// or "No data" for an empty set.
	DateRange string
}

// TimeBucket selects the grouping interval for time series.
type TimeBucket int

const (
	// BucketDay groups by calendar day (the default).
	BucketDay TimeBucket = iota

	// BucketHour groups by hour.
	BucketHour

	// BucketWeek groups by ISO-style week starting Monday.
	BucketWeek

	// BucketMonth groups by calendar month.
	BucketMonth
)

// String returns the bucket name.
func (b TimeBucket) String() string {
	switch b {
	case BucketHour:
		return "hour"
	case BucketWeek:
		return "week"
	case BucketMonth:
		return "month"
	default:
		return "day"
	}
}

// Truncate maps a timestamp to the start of its bucket.
func (b TimeBucket) Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	switch b {
	case BucketHour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
	case BucketWeek:
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		// Roll back to Monday.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case BucketMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
}

// TimeSeriesPoint is one non-empty bucket of post volume.
type TimeSeriesPoint struct {
	// Date is the bucket start.
	Date time.Time

	// PostCount is the number of posts in the bucket.
	PostCount int
}

// KeywordCount is one ranked keyword with its occurrence count.
type KeywordCount struct {
	Keyword string
	Count   int
}

// KeywordSeriesPoint is one bucket of posts mentioning a tracked keyword.
type KeywordSeriesPoint struct {
	Date    time.Time
	Count   int
	Keyword string
}

// Contributor is one ranked author with aggregate activity.
type Contributor struct {
	// Author is the account name.
	Author string

	// PostCount is the author's post count within the filtered set.
	PostCount int

	// AvgScore is the mean Score across the author's posts.
	AvgScore float64

	// TotalComments is the summed NumComments across the author's posts.
	TotalComments int

	// Percentage is the author's share of the filtered set, rounded
	// to two decimals.
	Percentage float64
}

// WeekdayCount is one row of the weekly posting rhythm. The rhythm
// aggregation always emits exactly seven rows, Monday through Sunday,
// zero-filled for quiet days.
type WeekdayCount struct {
	Day       string
	PostCount int
}

// Weekdays is the canonical weekday order for the weekly rhythm.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
