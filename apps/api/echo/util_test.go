package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/modeltest"
	"github.com/trezcool/examprep/core/studyplan"
)

var (
	now    = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	viewer = core.Viewer{ID: "u1", Username: "amani", Email: "amani@example.com"}

	errMissingToken = httpErr{Error: "missing or malformed token"}
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

// Fakes

type loggedEntry struct {
	msg  string
	args []interface{}
}

type loggerMock struct {
	mu     sync.Mutex
	errors []loggedEntry
}

var _ core.Logger = (*loggerMock)(nil)

func (l *loggerMock) Debug(string, ...interface{}) {}
func (l *loggerMock) Info(string, ...interface{})  {}
func (l *loggerMock) Warn(string, ...interface{})  {}
func (l *loggerMock) Fatal(string, ...interface{}) {}

func (l *loggerMock) Error(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, loggedEntry{msg: msg, args: args})
}

// fakeBackend serves both the model tests & the study plan from memory.
type fakeBackend struct {
	mu        sync.Mutex
	tests     []modeltest.Test
	questions map[core.ID][]modeltest.Question
	attempts  map[core.ID]modeltest.Attempt
	submitted []modeltest.Submission
	tasks     []studyplan.Task
	sessions  []studyplan.Session
	created   []studyplan.TaskPayload
	statuses  map[core.ID]studyplan.Status
	tokens    []string
	err       error
}

var (
	_ modeltest.Backend = (*fakeBackend)(nil)
	_ studyplan.Backend = (*fakeBackend)(nil)
)

func upstream404(path string) error {
	return &core.UpstreamError{Method: http.MethodGet, Path: path, StatusCode: http.StatusNotFound}
}

func (b *fakeBackend) record(token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = append(b.tokens, token)
	return b.err
}

func (b *fakeBackend) ListTests(_ context.Context, token string) ([]modeltest.Test, error) {
	if err := b.record(token); err != nil {
		return nil, err
	}
	return append([]modeltest.Test(nil), b.tests...), nil
}

func (b *fakeBackend) GetTest(_ context.Context, token string, id core.ID) (modeltest.Test, error) {
	if err := b.record(token); err != nil {
		return modeltest.Test{}, err
	}
	for _, t := range b.tests {
		if t.ID == id {
			return t, nil
		}
	}
	return modeltest.Test{}, upstream404("/api/model-test/" + string(id))
}

func (b *fakeBackend) GetQuestions(_ context.Context, token string, testID core.ID) ([]modeltest.Question, error) {
	if err := b.record(token); err != nil {
		return nil, err
	}
	return b.questions[testID], nil
}

func (b *fakeBackend) SubmitAttempt(_ context.Context, token string, sub modeltest.Submission) (core.ID, error) {
	if err := b.record(token); err != nil {
		return "", err
	}
	b.submitted = append(b.submitted, sub)
	return "a2", nil
}

func (b *fakeBackend) GetAttempt(_ context.Context, token string, id core.ID) (modeltest.Attempt, error) {
	if err := b.record(token); err != nil {
		return modeltest.Attempt{}, err
	}
	a, ok := b.attempts[id]
	if !ok {
		return modeltest.Attempt{}, upstream404("/api/model-test/attempt/" + string(id))
	}
	return a, nil
}

func (b *fakeBackend) ListTasks(_ context.Context, token string) ([]studyplan.Task, error) {
	if err := b.record(token); err != nil {
		return nil, err
	}
	return append([]studyplan.Task(nil), b.tasks...), nil
}

func (b *fakeBackend) TodaySessions(_ context.Context, token string) ([]studyplan.Session, error) {
	if err := b.record(token); err != nil {
		return nil, err
	}
	return append([]studyplan.Session(nil), b.sessions...), nil
}

func (b *fakeBackend) CreateTask(_ context.Context, token string, payload studyplan.TaskPayload) (studyplan.Task, error) {
	if err := b.record(token); err != nil {
		return studyplan.Task{}, err
	}
	b.created = append(b.created, payload)
	task := studyplan.Task{ID: "t9", Title: *payload.Title, Status: studyplan.StatusPending, CreatedAt: null.TimeFrom(now.Add(-90 * time.Second))}
	if payload.DueDate != nil {
		task.DueDate = *payload.DueDate
	}
	return task, nil
}

func (b *fakeBackend) findTask(id core.ID) (studyplan.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return studyplan.Task{}, false
}

func (b *fakeBackend) UpdateTask(_ context.Context, token string, id core.ID, payload studyplan.TaskPayload) (studyplan.Task, error) {
	if err := b.record(token); err != nil {
		return studyplan.Task{}, err
	}
	t, ok := b.findTask(id)
	if !ok {
		return studyplan.Task{}, upstream404("/api/tasks/" + string(id))
	}
	if payload.Title != nil {
		t.Title = *payload.Title
	}
	return t, nil
}

func (b *fakeBackend) UpdateTaskStatus(_ context.Context, token string, id core.ID, status studyplan.Status) (studyplan.Task, error) {
	if err := b.record(token); err != nil {
		return studyplan.Task{}, err
	}
	t, ok := b.findTask(id)
	if !ok {
		return studyplan.Task{}, upstream404("/api/tasks/" + string(id))
	}
	b.statuses[id] = status
	t.Status = status
	return t, nil
}

func (b *fakeBackend) DeleteTask(_ context.Context, token string, id core.ID) error {
	if err := b.record(token); err != nil {
		return err
	}
	if _, ok := b.findTask(id); !ok {
		return upstream404("/api/tasks/" + string(id))
	}
	return nil
}

func at(s string) null.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return null.TimeFrom(t)
}

func newFakeBackend() *fakeBackend {
	algebra := modeltest.Test{
		ID: "t1", Title: "Algebra Basics", Subjects: []string{"Maths"}, Topics: []string{"Algebra"},
		Difficulty: modeltest.DifficultyEasy, TimeLimit: 30, QuestionsCount: 2, PassingScore: 1, TotalPoints: 2,
	}
	questions := []modeltest.Question{
		{ID: "q1", Question: "1+1?", Options: modeltest.Options{"1", "2", "3"}, CorrectAnswer: 1, Points: 1, Subject: "Maths", Topic: "Algebra"},
		{ID: "q2", Question: "2x=4, x?", Options: modeltest.Options{"1", "2"}, CorrectAnswer: 1, Points: 1, Subject: "Maths", Topic: "Algebra"},
	}
	graded := algebra
	graded.Questions = questions

	return &fakeBackend{
		tests: []modeltest.Test{
			algebra,
			{
				ID: "t2", Title: "Organic Chemistry", Subjects: []string{"Chemistry"}, Topics: []string{"Molecules"},
				Difficulty: modeltest.DifficultyHard, TimeLimit: 90, QuestionsCount: 1,
			},
		},
		questions: map[core.ID][]modeltest.Question{"t1": questions},
		attempts: map[core.ID]modeltest.Attempt{
			"a1": {ID: "a1", Test: graded, Answers: modeltest.Answers{"q1": 1, "q2": 0}, Score: 1, TimeSpent: 125, StartTime: at("2025-01-05T10:00:00Z")},
		},
		tasks: []studyplan.Task{
			{ID: "1", Title: "Algebra drills", SubjectArea: "Maths", Priority: "high", Status: studyplan.StatusPending, DueDate: at("2025-03-10T15:00:00Z"), CreatedAt: at("2025-03-10T07:30:00Z")},
			{ID: "2", Title: "Organic chem", SubjectArea: "Chemistry", Status: studyplan.StatusPending, DueDate: at("2025-03-14T10:00:00Z"), CreatedAt: at("2025-03-08T09:30:00Z")},
			{ID: "3", Title: "Past paper", SubjectArea: "Maths", Status: "completed", DueDate: at("2025-03-09T10:00:00Z"), CompletedAt: at("2025-03-09T18:00:00Z")},
		},
		sessions: []studyplan.Session{
			{ID: "s1", TaskID: "1", StartTime: at("2025-03-10T14:05:00Z"), EndTime: at("2025-03-10T15:00:00Z"), Duration: 55, Goal: "chapter 2"},
		},
		statuses: make(map[core.ID]studyplan.Status),
	}
}

func setup(t *testing.T, configure ...func(*core.Config)) (Server, *fakeBackend, *loggerMock) {
	t.Helper()
	conf := &core.Config{AppName: "ExamPrep", TestMode: true}
	conf.Server.DisableReqLogs = true
	for _, fn := range configure {
		fn(conf)
	}

	if conf.Display.Location == nil {
		conf.Display.Location = time.UTC
	}

	validate, translator := core.NewValidator()
	dates := datefmt.New(datefmt.WithClock(func() time.Time { return now }), datefmt.WithLocation(conf.Display.Location))
	backend := newFakeBackend()
	logger := new(loggerMock)

	srv := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
		Dates:      dates,
		TestSvc:    modeltest.NewService(backend, validate),
		PlanSvc:    studyplan.NewService(backend, validate, dates),
	})
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv, backend, logger
}

// Helpers

func getToken(t *testing.T, v core.Viewer) string {
	t.Helper()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{Subject: v.ID, ExpiresAt: now.Add(time.Hour).Unix()},
		Username:       v.Username,
		Email:          v.Email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code)
	if tt.wantData == nil {
		assert.Empty(t, rec.Body.String())
		return
	}
	assert.JSONEq(t, string(tt.wantData), rec.Body.String())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
