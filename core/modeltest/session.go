package modeltest

import (
	"math"

	"github.com/pkg/errors"

	"github.com/trezcool/examprep/core"
)

// LowTimeThreshold is the remaining time (in seconds) under which the countdown turns red.
const LowTimeThreshold = 300

var (
	ErrNoQuestions     = errors.New("test has no questions")
	ErrInvalidIndex    = errors.New("question index out of range")
	ErrInvalidOption   = errors.New("option out of range")
	ErrUnknownQuestion = errors.New("question not part of the test")
)

// Session is the state of a test being taken: countdown, answers, flags & current question.
// It is not safe for concurrent use.
type Session struct {
	test      Test
	questions []Question
	byID      map[core.ID]int
	current   int
	answers   Answers
	flagged   map[int]bool
	remaining int
	timeUp    bool
}

func NewSession(test Test, questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	byID := make(map[core.ID]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}
	return &Session{
		test:      test,
		questions: questions,
		byID:      byID,
		answers:   make(Answers),
		flagged:   make(map[int]bool),
		remaining: test.TimeLimitSeconds(),
	}, nil
}

func (s *Session) Test() Test             { return s.test }
func (s *Session) Questions() []Question  { return s.questions }
func (s *Session) Total() int             { return len(s.questions) }
func (s *Session) CurrentIndex() int      { return s.current }
func (s *Session) Current() Question      { return s.questions[s.current] }
func (s *Session) Remaining() int         { return s.remaining }
func (s *Session) TimeUp() bool           { return s.timeUp }
func (s *Session) IsLowTime() bool        { return s.remaining < LowTimeThreshold }
func (s *Session) Flagged(index int) bool { return s.flagged[index] }
func (s *Session) IsFirst() bool          { return s.current == 0 }
func (s *Session) IsLast() bool           { return s.current == len(s.questions)-1 }
func (s *Session) Answers() Answers       { return copyAnswers(s.answers) }

// Answered reports whether the question at index has a chosen option.
func (s *Session) Answered(index int) bool {
	_, ok := s.AnswerAt(index)
	return ok
}

// AnswerAt returns the chosen option of the question at index, if any.
func (s *Session) AnswerAt(index int) (int, bool) {
	if index < 0 || index >= len(s.questions) {
		return 0, false
	}
	opt, ok := s.answers[string(s.questions[index].ID)]
	return opt, ok
}

// Tick removes a second from the countdown. It returns true once time is up,
// further ticks are then no-ops.
func (s *Session) Tick() bool {
	if s.timeUp {
		return true
	}
	if s.remaining <= 1 {
		s.remaining = 0
		s.timeUp = true
		return true
	}
	s.remaining--
	return false
}

// Elapse spends the given seconds at once, ending up where as many Ticks would.
func (s *Session) Elapse(seconds int) bool {
	if s.timeUp || seconds <= 0 {
		return s.timeUp
	}
	if seconds >= s.remaining {
		s.remaining = 0
		s.timeUp = true
		return true
	}
	s.remaining -= seconds
	return false
}

// Answer records option for the current question, replacing any previous choice.
func (s *Session) Answer(option int) error {
	return s.AnswerQuestion(s.Current().ID, option)
}

// AnswerQuestion records option for the question with the given ID.
func (s *Session) AnswerQuestion(id core.ID, option int) error {
	idx, ok := s.byID[id]
	if !ok {
		return errors.Wrapf(ErrUnknownQuestion, "question %q", id)
	}
	if option < 0 || option >= len(s.questions[idx].Options) {
		return errors.Wrapf(ErrInvalidOption, "question %q: option %d", id, option)
	}
	s.answers[string(id)] = option
	return nil
}

func (s *Session) ToggleFlag() {
	if s.flagged[s.current] {
		delete(s.flagged, s.current)
	} else {
		s.flagged[s.current] = true
	}
}

func (s *Session) Next() {
	if s.current < len(s.questions)-1 {
		s.current++
	}
}

func (s *Session) Prev() {
	if s.current > 0 {
		s.current--
	}
}

func (s *Session) Jump(index int) error {
	if index < 0 || index >= len(s.questions) {
		return ErrInvalidIndex
	}
	s.current = index
	return nil
}

type Progress struct {
	Answered   int `json:"answered"`
	Unanswered int `json:"unanswered"`
	Total      int `json:"total"`
	Percent    int `json:"percent"`
}

func (s *Session) Progress() Progress {
	var answered int
	for i := range s.questions {
		if s.Answered(i) {
			answered++
		}
	}
	total := len(s.questions)
	return Progress{
		Answered:   answered,
		Unanswered: total - answered,
		Total:      total,
		Percent:    percent(float64(answered), float64(total)),
	}
}

// Submission returns what is sent to the backend, time spent is the consumed part of the allotted time.
func (s *Session) Submission() Submission {
	return Submission{
		TestID:    s.test.ID,
		Answers:   s.Answers(),
		TimeSpent: s.test.TimeLimitSeconds() - s.remaining,
	}
}

func copyAnswers(ans Answers) Answers {
	cp := make(Answers, len(ans))
	for k, v := range ans {
		cp[k] = v
	}
	return cp
}

// percent rounds half up, 0 when total is 0.
func percent(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(part/total*100 + 0.5))
}
