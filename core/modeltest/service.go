package modeltest

import (
	"context"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/examprep/core"
)

var (
	ErrTestNotFound    = errors.New("test not found")
	ErrAttemptNotFound = errors.New("attempt not found")
)

type (
	// Backend is the part of the external REST backend serving model tests.
	Backend interface {
		ListTests(ctx context.Context, token string) ([]Test, error)
		GetTest(ctx context.Context, token string, id core.ID) (Test, error)
		GetQuestions(ctx context.Context, token string, testID core.ID) ([]Question, error)
		SubmitAttempt(ctx context.Context, token string, sub Submission) (core.ID, error)
		GetAttempt(ctx context.Context, token string, id core.ID) (Attempt, error)
	}

	Service struct {
		backend  Backend
		validate *validator.Validate
	}
)

func NewService(backend Backend, validate *validator.Validate) *Service {
	return &Service{backend: backend, validate: validate}
}

// List returns the tests matching filter, ordered by orderings.
func (svc *Service) List(ctx context.Context, token string, filter Filter, orderings []core.Ordering) ([]Test, error) {
	tests, err := svc.backend.ListTests(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "listing tests")
	}
	tests = filter.Apply(tests)
	Sort(tests, orderings)
	return tests, nil
}

// Start fetches a test & its questions and opens a new Session on them.
func (svc *Service) Start(ctx context.Context, token string, id core.ID) (*Session, error) {
	test, err := svc.backend.GetTest(ctx, token, id)
	if err != nil {
		return nil, notFound(errors.Wrap(err, "getting test"), ErrTestNotFound)
	}
	questions, err := svc.backend.GetQuestions(ctx, token, id)
	if err != nil {
		return nil, notFound(errors.Wrap(err, "getting questions"), ErrTestNotFound)
	}
	return NewSession(test, questions)
}

// Submit checks the posted answers against the test and submits them.
// Time spent is capped to the test's time limit. It returns the new attempt's ID.
func (svc *Service) Submit(ctx context.Context, token string, testID core.ID, data NewAttempt) (core.ID, error) {
	if err := svc.validate.Struct(data); err != nil {
		return "", err
	}

	sess, err := svc.Start(ctx, token, testID)
	if err != nil {
		return "", err
	}
	qIDs := make([]string, 0, len(data.Answers))
	for qID := range data.Answers {
		qIDs = append(qIDs, qID)
	}
	sort.Strings(qIDs) // the first invalid answer by ID is reported
	for _, qID := range qIDs {
		if err = sess.AnswerQuestion(core.ID(qID), data.Answers[qID]); err != nil {
			return "", core.NewValidationError(err, core.FieldError{Field: "answers", Error: err.Error()})
		}
	}
	sess.Elapse(data.TimeSpent)

	attemptID, err := svc.backend.SubmitAttempt(ctx, token, sess.Submission())
	if err != nil {
		return "", errors.Wrap(err, "submitting attempt")
	}
	return attemptID, nil
}

// Results fetches an attempt and grades it.
func (svc *Service) Results(ctx context.Context, token string, attemptID core.ID) (Results, error) {
	attempt, err := svc.backend.GetAttempt(ctx, token, attemptID)
	if err != nil {
		return Results{}, notFound(errors.Wrap(err, "getting attempt"), ErrAttemptNotFound)
	}
	return ComputeResults(attempt), nil
}

func notFound(err, sentinel error) error {
	if core.IsUpstreamStatus(err, http.StatusNotFound) {
		return sentinel
	}
	return err
}
