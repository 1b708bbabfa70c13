// Package schedule turns raw assignment rows into the 7-day calendar
// view shown on the home page.
package schedule

import (
	"sort"

	"github.com/hometeam/chores-back/internal/models"
	"github.com/hometeam/chores-back/internal/store"
)

// Entry is one calendar cell: a task with its start and derived end time.
type Entry struct {
	TaskName    string       `json:"task_name"`
	TaskTime    models.Clock `json:"task_time"`
	EndTaskTime models.Clock `json:"end_task_time"`
}

// Week maps every canonical weekday to that day's entries. All seven
// days are always present; a day nobody is assigned on carries an empty
// list, never a missing key.
type Week map[models.Weekday][]Entry

// BuildWeek groups the fetched rows by day and sorts each day by start
// time ascending. The end time is derived from the duration here rather
// than in SQL, rolling over midnight when a late task runs past 24:00.
func BuildWeek(rows []store.WeekRow) Week {
	week := Week{}
	for _, day := range models.Week() {
		week[day] = []Entry{}
	}

	for _, row := range rows {
		week[row.Day] = append(week[row.Day], Entry{
			TaskName:    row.TaskName,
			TaskTime:    row.TaskTime,
			EndTaskTime: row.TaskTime.AddMinutes(row.DurationMinutes),
		})
	}

	for day := range week {
		entries := week[day]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].TaskTime < entries[j].TaskTime
		})
	}

	return week
}
