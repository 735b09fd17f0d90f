// Package reminder defines the four fixed daily reminders and their
// next-occurrence arithmetic. The CLI only displays the schedule; no OS
// notification is ever scheduled from here.
package reminder

import "time"

type Reminder struct {
	ID     string
	Title  string
	Body   string
	Hour   int
	Minute int
}

// Defaults mirrors the app's fixed reminder set.
var Defaults = []Reminder{
	{ID: "walk-reminder", Title: "Time for Your Walk", Body: "A short walk today keeps your program on track.", Hour: 8, Minute: 0},
	{ID: "meal-reminder", Title: "Log Your Meal", Body: "Record what you ate while it's fresh in mind.", Hour: 12, Minute: 30},
	{ID: "exercise-reminder", Title: "Exercise Time", Body: "A few minutes of strength or stretching counts.", Hour: 15, Minute: 0},
	{ID: "evening-summary", Title: "Daily Summary", Body: "Check today's totals before the day ends.", Hour: 19, Minute: 0},
}

// NextOccurrence returns the next time this reminder fires after now:
// today at Hour:Minute if that is still ahead, otherwise tomorrow.
func (r Reminder) NextOccurrence(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), r.Hour, r.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
