package studyplan

import (
	"context"
	"sync"

	"github.com/trezcool/examprep/core"
)

// backendMock is an in-memory Backend, safe for the concurrent fetches of Dashboard.
type backendMock struct {
	mu            sync.Mutex
	tasks         []Task
	sessions      []Session
	created       []TaskPayload
	updated       map[core.ID]TaskPayload
	statusUpdates map[core.ID]Status
	deleted       []core.ID
	listErr       error
	sessionsErr   error
}

var _ Backend = (*backendMock)(nil)

func newBackendMock() *backendMock {
	return &backendMock{
		updated:       make(map[core.ID]TaskPayload),
		statusUpdates: make(map[core.ID]Status),
	}
}

func (m *backendMock) find(id core.ID) (Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func notFoundErr(method string, id core.ID) error {
	return &core.UpstreamError{Method: method, Path: "/api/tasks/" + string(id), StatusCode: 404}
}

func (m *backendMock) ListTasks(context.Context, string) ([]Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]Task(nil), m.tasks...), nil
}

func (m *backendMock) TodaySessions(context.Context, string) ([]Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionsErr != nil {
		return nil, m.sessionsErr
	}
	return append([]Session(nil), m.sessions...), nil
}

func (m *backendMock) CreateTask(_ context.Context, _ string, payload TaskPayload) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, payload)
	return Task{ID: "new", Title: *payload.Title, Status: StatusPending}, nil
}

func (m *backendMock) UpdateTask(_ context.Context, _ string, id core.ID, payload TaskPayload) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.find(id)
	if !ok {
		return Task{}, notFoundErr("PUT", id)
	}
	m.updated[id] = payload
	return t, nil
}

func (m *backendMock) UpdateTaskStatus(_ context.Context, _ string, id core.ID, status Status) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.find(id)
	if !ok {
		return Task{}, notFoundErr("PUT", id)
	}
	m.statusUpdates[id] = status
	t.Status = status
	return t, nil
}

func (m *backendMock) DeleteTask(_ context.Context, _ string, id core.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.find(id); !ok {
		return notFoundErr("DELETE", id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}
