package modeltest

import (
	"context"

	"github.com/trezcool/examprep/core"
)

// backendMock is an in-memory Backend, its error fields are returned when set.
type backendMock struct {
	tests      map[core.ID]Test
	questions  map[core.ID][]Question
	attempts   map[core.ID]Attempt
	submitted  []Submission
	listErr    error
	getErr     error
	submitErr  error
	lastTokens []string
}

var _ Backend = (*backendMock)(nil)

func newBackendMock() *backendMock {
	return &backendMock{
		tests:     make(map[core.ID]Test),
		questions: make(map[core.ID][]Question),
		attempts:  make(map[core.ID]Attempt),
	}
}

func (m *backendMock) ListTests(_ context.Context, token string) ([]Test, error) {
	m.lastTokens = append(m.lastTokens, token)
	if m.listErr != nil {
		return nil, m.listErr
	}
	tests := make([]Test, 0, len(m.tests))
	for _, id := range []core.ID{"t1", "t2", "t3", "t4"} {
		if t, ok := m.tests[id]; ok {
			tests = append(tests, t)
		}
	}
	return tests, nil
}

func (m *backendMock) GetTest(_ context.Context, token string, id core.ID) (Test, error) {
	m.lastTokens = append(m.lastTokens, token)
	if m.getErr != nil {
		return Test{}, m.getErr
	}
	t, ok := m.tests[id]
	if !ok {
		return Test{}, &core.UpstreamError{Method: "GET", Path: "/api/model-test/" + string(id), StatusCode: 404}
	}
	return t, nil
}

func (m *backendMock) GetQuestions(_ context.Context, token string, testID core.ID) ([]Question, error) {
	m.lastTokens = append(m.lastTokens, token)
	return m.questions[testID], nil
}

func (m *backendMock) SubmitAttempt(_ context.Context, token string, sub Submission) (core.ID, error) {
	m.lastTokens = append(m.lastTokens, token)
	if m.submitErr != nil {
		return "", m.submitErr
	}
	m.submitted = append(m.submitted, sub)
	return "a1", nil
}

func (m *backendMock) GetAttempt(_ context.Context, token string, id core.ID) (Attempt, error) {
	m.lastTokens = append(m.lastTokens, token)
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, &core.UpstreamError{Method: "GET", Path: "/api/model-test/attempt/" + string(id), StatusCode: 404}
	}
	return a, nil
}

func sampleQuestions() []Question {
	return []Question{
		{ID: "q1", Question: "2 + 2 = ?", Options: Options{"3", "4", "5"}, CorrectAnswer: 1, Points: 2, Subject: "Maths", Topic: "Arithmetic"},
		{ID: "q2", Question: "Derivative of x²?", Options: Options{"x", "2x"}, CorrectAnswer: 1, Points: 3, Subject: "Maths", Topic: "Calculus"},
		{ID: "q3", Question: "H2O is?", Options: Options{"Water", "Salt"}, CorrectAnswer: 0, Points: 5, Subject: "Chemistry", Topic: "Molecules"},
	}
}
