package studyplan

import (
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/examprep/core"
)

// Statuses
const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Priorities
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// SubjectAll disables the subject filter.
const SubjectAll = "all"

type (
	// Status of a Task, the backend is not consistent with its casing.
	Status string

	Priority string
)

func (s Status) Normalize() Status     { return Status(strings.ToUpper(core.CleanString(string(s)))) }
func (s Status) Is(other Status) bool  { return s.Normalize() == other.Normalize() }
func (p Priority) Normalize() Priority { return Priority(strings.ToUpper(core.CleanString(string(p)))) }

type Task struct {
	ID            core.ID   `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SubjectArea   string    `json:"subjectArea"`
	Priority      Priority  `json:"priority"`
	Status        Status    `json:"status"`
	DueDate       null.Time `json:"dueDate"`
	EstimatedTime int       `json:"estimatedTime"` // minutes
	CreatedAt     null.Time `json:"createdAt"`
	CompletedAt   null.Time `json:"completedAt"`
}

func (t Task) IsCompleted() bool { return t.Status.Is(StatusCompleted) }

// Session is a scheduled study block for a Task.
type Session struct {
	ID        core.ID   `json:"id"`
	TaskID    core.ID   `json:"taskId"`
	Task      *Task     `json:"task,omitempty"`
	StartTime null.Time `json:"startTime"`
	EndTime   null.Time `json:"endTime"`
	Duration  int       `json:"duration"` // minutes
	Goal      string    `json:"goal"`
	Completed bool      `json:"completed"`
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title         string    `json:"title" validate:"required,notblank"`
	Description   string    `json:"description"`
	SubjectArea   string    `json:"subjectArea"`
	Priority      Priority  `json:"priority" validate:"oneof_ci=LOW MEDIUM HIGH"`
	DueDate       null.Time `json:"dueDate"`
	EstimatedTime int       `json:"estimatedTime" validate:"min=0"`
}

// Payload returns the body sent to the backend: cleaned strings & upper-cased priority.
// Runs of whitespace inside the title are collapsed to a single space.
func (nt NewTask) Payload() TaskPayload {
	title := cleanTitle(nt.Title)
	pl := TaskPayload{
		Title:       &title,
		Description: strPtr(core.CleanString(nt.Description)),
		SubjectArea: strPtr(core.CleanString(nt.SubjectArea)),
	}
	if p := nt.Priority.Normalize(); p != "" {
		pl.Priority = &p
	}
	if nt.DueDate.Valid {
		due := nt.DueDate
		pl.DueDate = &due
	}
	if nt.EstimatedTime > 0 {
		est := nt.EstimatedTime
		pl.EstimatedTime = &est
	}
	return pl
}

// UpdateTask defines what information may be provided to modify an existing Task.
type UpdateTask struct {
	Title         *string    `json:"title" validate:"omitempty,notblank"`
	Description   *string    `json:"description"`
	SubjectArea   *string    `json:"subjectArea"`
	Priority      *Priority  `json:"priority" validate:"omitempty,oneof_ci=LOW MEDIUM HIGH"`
	Status        *Status    `json:"status" validate:"omitempty,oneof_ci=PENDING IN_PROGRESS COMPLETED"`
	DueDate       *null.Time `json:"dueDate"`
	EstimatedTime *int       `json:"estimatedTime" validate:"omitempty,min=0"`
}

// StatusOnly reports whether the update only changes the status.
func (uu UpdateTask) StatusOnly() bool {
	return uu.Status != nil &&
		uu.Title == nil && uu.Description == nil && uu.SubjectArea == nil &&
		uu.Priority == nil && uu.DueDate == nil && uu.EstimatedTime == nil
}

func (uu UpdateTask) Payload() TaskPayload {
	pl := TaskPayload{
		Description:   uu.Description,
		SubjectArea:   uu.SubjectArea,
		DueDate:       uu.DueDate,
		EstimatedTime: uu.EstimatedTime,
	}
	if uu.Title != nil {
		pl.Title = strPtr(cleanTitle(*uu.Title))
	}
	if uu.Priority != nil {
		p := uu.Priority.Normalize()
		pl.Priority = &p
	}
	if uu.Status != nil {
		s := uu.Status.Normalize()
		pl.Status = &s
	}
	return pl
}

// TaskPayload is the JSON body of task create & update requests, unset fields are omitted.
type TaskPayload struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	SubjectArea   *string    `json:"subjectArea,omitempty"`
	Priority      *Priority  `json:"priority,omitempty"`
	Status        *Status    `json:"status,omitempty"`
	DueDate       *null.Time `json:"dueDate,omitempty"`
	EstimatedTime *int       `json:"estimatedTime,omitempty"`
}

func cleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
