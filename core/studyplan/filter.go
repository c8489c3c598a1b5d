package studyplan

import (
	"time"

	"github.com/trezcool/examprep/core/datefmt"
)

// Today returns the unfinished tasks due on now's calendar day in loc.
func Today(tasks []Task, now time.Time, loc *time.Location) []Task {
	return filter(tasks, func(t Task) bool {
		return t.DueDate.Valid && !t.IsCompleted() && datefmt.SameDay(t.DueDate.Time, now, loc)
	})
}

// Upcoming returns the unfinished tasks due after now's calendar day in loc.
func Upcoming(tasks []Task, now time.Time, loc *time.Location) []Task {
	today := datefmt.StartOfDay(now, loc)
	return filter(tasks, func(t Task) bool {
		return t.DueDate.Valid && !t.IsCompleted() && datefmt.StartOfDay(t.DueDate.Time, loc).After(today)
	})
}

func Completed(tasks []Task) []Task {
	return filter(tasks, Task.IsCompleted)
}

// BySubject keeps the tasks of subject, SubjectAll or "" keep everything.
func BySubject(tasks []Task, subject string) []Task {
	if subject == "" || subject == SubjectAll {
		return tasks
	}
	return filter(tasks, func(t Task) bool { return t.SubjectArea == subject })
}

func filter(tasks []Task, keep func(Task) bool) []Task {
	kept := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
