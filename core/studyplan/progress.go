package studyplan

import "math"

// Progress is the progress panel of the dashboard.
// Tasks only count the listed ones: due today, upcoming & completed.
type Progress struct {
	SessionsDone    int `json:"sessionsDone"`
	SessionsTotal   int `json:"sessionsTotal"`
	SessionsPercent int `json:"sessionsPercent"`
	TasksDone       int `json:"tasksDone"`
	TasksTotal      int `json:"tasksTotal"`
	TasksPercent    int `json:"tasksPercent"`
}

func ComputeProgress(sessions []Session, today, upcoming, completed []Task) Progress {
	var done int
	for _, s := range sessions {
		if s.Completed {
			done++
		}
	}
	tasksTotal := len(today) + len(upcoming) + len(completed)
	return Progress{
		SessionsDone:    done,
		SessionsTotal:   len(sessions),
		SessionsPercent: percent(done, len(sessions)),
		TasksDone:       len(completed),
		TasksTotal:      tasksTotal,
		TasksPercent:    percent(len(completed), tasksTotal),
	}
}

// percent rounds half up, 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(total)*100 + 0.5))
}
