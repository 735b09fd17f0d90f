// Package program holds the fixed 12-week walking curriculum and the
// pure calculators that position a user inside it.
package program

import (
	"fmt"
	"math"
	"time"

	"github.com/alpine-labs/my-pace/internal/model"
)

// Week describes one step of the walking curriculum.
type Week struct {
	Number           int
	DailyGoalMinutes int
	Description      string
	Tips             string
}

// Weeks is the full curriculum, ordered. Daily goals are monotonically
// non-decreasing from 5 up to 35 minutes.
var Weeks = []Week{
	{1, 5, "Getting Started", "Start slow, focus on form and comfort"},
	{2, 8, "Building Momentum", "Slight increase, maintain comfortable pace"},
	{3, 10, "Building a Routine", "Consistency is key: try walking at the same time each day"},
	{4, 12, "Stepping Up", "Adding a couple minutes, you're doing great!"},
	{5, 15, "Quarter-Hour Milestone", "You reached 15 minutes, celebrate this milestone!"},
	{6, 18, "Steady Progression", "Keep your comfortable pace, endurance matters more than speed"},
	{7, 20, "Twenty Minutes!", "Great progress, 20 minutes is a major achievement"},
	{8, 22, "Keep It Up", "You're well past the halfway mark"},
	{9, 25, "Nearing the Goal", "Almost at 30 minutes, stay steady"},
	{10, 28, "Almost There", "Just a couple more minutes to reach 30!"},
	{11, 30, "Half-Hour Walks", "Excellent! You're walking 30 minutes a day"},
	{12, 35, "Maintain & Enjoy", "Maintain your routine and enjoy the benefits of daily walking"},
}

// TotalWeeks is the program length.
const TotalWeeks = 12

const dateLayout = "2006-01-02"

// CurrentWeek computes the program week for now given the program start
// date, clamped to [1, TotalWeeks]. A future start date yields week 1.
func CurrentWeek(startDate string, now time.Time) (int, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid program start date %q, expected YYYY-MM-DD", startDate)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// The span between two local midnights is not always a multiple of
	// 24h (DST shifts it by an hour), so round rather than truncate.
	days := int(math.Round(today.Sub(start).Hours() / 24))
	week := days/7 + 1
	return clampWeek(week), nil
}

// DailyGoalMinutes returns the per-day walking target for a week. The
// week is clamped first; an index past the table reuses the last entry.
func DailyGoalMinutes(week int) int {
	week = clampWeek(week)
	for _, w := range Weeks {
		if w.Number == week {
			return w.DailyGoalMinutes
		}
	}
	return Weeks[len(Weeks)-1].DailyGoalMinutes
}

// WeekByNumber returns the curriculum entry for a week, clamped.
func WeekByNumber(week int) Week {
	week = clampWeek(week)
	return Weeks[week-1]
}

// WeekProgress reports completion of a program week as an integer
// percentage in [0, 100]: total seconds walked during that week over
// the weekly goal of dailyGoalMinutes * 60 * 7.
func WeekProgress(walkLogs []model.WalkLogEntry, week int) int {
	goalSeconds := DailyGoalMinutes(week) * 60 * 7
	if goalSeconds <= 0 {
		return 100
	}
	total := 0
	for _, log := range walkLogs {
		if log.ProgramWeek == week {
			total += log.DurationSeconds
		}
	}
	pct := int(math.Round(float64(total) / float64(goalSeconds) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatDuration renders seconds as MM:SS, or H:MM:SS past an hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func clampWeek(week int) int {
	if week < 1 {
		return 1
	}
	if week > TotalWeeks {
		return TotalWeeks
	}
	return week
}
