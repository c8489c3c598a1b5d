package studyplan

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
)

var ErrTaskNotFound = errors.New("task not found")

type (
	// Backend is the part of the external REST backend serving study tasks & sessions.
	Backend interface {
		ListTasks(ctx context.Context, token string) ([]Task, error)
		TodaySessions(ctx context.Context, token string) ([]Session, error)
		CreateTask(ctx context.Context, token string, payload TaskPayload) (Task, error)
		UpdateTask(ctx context.Context, token string, id core.ID, payload TaskPayload) (Task, error)
		UpdateTaskStatus(ctx context.Context, token string, id core.ID, status Status) (Task, error)
		DeleteTask(ctx context.Context, token string, id core.ID) error
	}

	// Dashboard is the content of the study plan screen.
	Dashboard struct {
		Now       time.Time
		Today     []Task
		Upcoming  []Task
		Completed []Task
		Sessions  []Session
		Progress  Progress
	}

	Service struct {
		backend  Backend
		validate *validator.Validate
		dates    *datefmt.Formatter
	}
)

// NewService returns a Service deciding what "today" is with the clock & location of dates.
func NewService(backend Backend, validate *validator.Validate, dates *datefmt.Formatter) *Service {
	if dates == nil {
		dates = datefmt.Default()
	}
	return &Service{backend: backend, validate: validate, dates: dates}
}

// Dashboard fetches tasks & today's sessions concurrently, sorts tasks into today, upcoming & completed
// and computes the progress panel.
// subject narrows both tasks & sessions, SubjectAll keeps everything.
func (svc *Service) Dashboard(ctx context.Context, token, subject string) (Dashboard, error) {
	var (
		tasks    []Task
		sessions []Session
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = svc.backend.ListTasks(gctx, token)
		return errors.Wrap(err, "listing tasks")
	})
	g.Go(func() error {
		var err error
		sessions, err = svc.backend.TodaySessions(gctx, token)
		return errors.Wrap(err, "listing today's sessions")
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	byID := make(map[core.ID]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	linked := make([]Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.Task == nil {
			if t, ok := byID[sess.TaskID]; ok {
				t := t
				sess.Task = &t
			}
		}
		if subject != "" && subject != SubjectAll && (sess.Task == nil || sess.Task.SubjectArea != subject) {
			continue
		}
		linked = append(linked, sess)
	}

	now := svc.dates.Now()
	loc := svc.dates.Location()
	tasks = BySubject(tasks, subject)
	dash := Dashboard{
		Now:       now,
		Today:     Today(tasks, now, loc),
		Upcoming:  Upcoming(tasks, now, loc),
		Completed: Completed(tasks),
		Sessions:  linked,
	}
	dash.Progress = ComputeProgress(dash.Sessions, dash.Today, dash.Upcoming, dash.Completed)
	return dash, nil
}

func (svc *Service) CreateTask(ctx context.Context, token string, nt NewTask) (Task, error) {
	if err := svc.validate.Struct(nt); err != nil {
		return Task{}, err
	}
	task, err := svc.backend.CreateTask(ctx, token, nt.Payload())
	if err != nil {
		return Task{}, errors.Wrap(err, "creating task")
	}
	return task, nil
}

// UpdateTask sends status-only updates to the dedicated status endpoint, anything else to the full update.
func (svc *Service) UpdateTask(ctx context.Context, token string, id core.ID, uu UpdateTask) (Task, error) {
	if err := svc.validate.Struct(uu); err != nil {
		return Task{}, err
	}
	if uu.StatusOnly() {
		return svc.SetStatus(ctx, token, id, *uu.Status)
	}
	task, err := svc.backend.UpdateTask(ctx, token, id, uu.Payload())
	if err != nil {
		return Task{}, notFound(errors.Wrap(err, "updating task"))
	}
	return task, nil
}

func (svc *Service) SetStatus(ctx context.Context, token string, id core.ID, status Status) (Task, error) {
	status = status.Normalize()
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
	default:
		return Task{}, core.NewValidationError(nil, core.FieldError{Field: "status", Error: "invalid status"})
	}
	task, err := svc.backend.UpdateTaskStatus(ctx, token, id, status)
	if err != nil {
		return Task{}, notFound(errors.Wrap(err, "updating task status"))
	}
	return task, nil
}

func (svc *Service) DeleteTask(ctx context.Context, token string, id core.ID) error {
	if err := svc.backend.DeleteTask(ctx, token, id); err != nil {
		return notFound(errors.Wrap(err, "deleting task"))
	}
	return nil
}

func notFound(err error) error {
	if core.IsUpstreamStatus(err, http.StatusNotFound) {
		return ErrTaskNotFound
	}
	return err
}
