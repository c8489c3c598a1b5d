package modeltest

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/examprep/core"
)

// Difficulties
const (
	DifficultyAll    Difficulty = "all"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	defaultTimeLimit = 60 // minutes
)

var difficultyRanks = map[Difficulty]int{
	DifficultyEasy:   1,
	DifficultyMedium: 2,
	DifficultyHard:   3,
}

type Difficulty string

type Test struct {
	ID             core.ID    `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	TimeLimit      int        `json:"timeLimit"` // minutes
	Subjects       []string   `json:"subjects"`
	Topics         []string   `json:"topics"`
	Difficulty     Difficulty `json:"difficulty"`
	QuestionsCount int        `json:"questionsCount"`
	IsCustom       bool       `json:"isCustom"`
	PassingScore   float64    `json:"passingScore"`
	TotalPoints    float64    `json:"totalPoints"`
	Questions      []Question `json:"questions,omitempty"`
}

// TimeLimitSeconds returns the allotted time, tests without limit get an hour.
func (t Test) TimeLimitSeconds() int {
	if t.TimeLimit <= 0 {
		return defaultTimeLimit * 60
	}
	return t.TimeLimit * 60
}

type Question struct {
	ID            core.ID `json:"id"`
	Question      string  `json:"question"`
	Options       Options `json:"options"`
	CorrectAnswer int     `json:"correctAnswer"`
	Points        float64 `json:"points"`
	Subject       string  `json:"subject"`
	Topic         string  `json:"topic"`
	Explanation   string  `json:"explanation"`
}

// Options are the possible answers of a Question.
// The backend sends them either as an array or as a JSON-encoded array string,
// anything else decodes as no options.
type Options []string

func (opts *Options) UnmarshalJSON(data []byte) error {
	*opts = Options{}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list != nil {
			*opts = list
		}
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		if err = json.Unmarshal([]byte(encoded), &list); err == nil && list != nil {
			*opts = list
		}
	}
	return nil
}

// Answers maps question IDs to the index of the chosen option.
// The backend stores them as a JSON-encoded object string.
type Answers map[string]int

func (ans *Answers) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*ans = Answers{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return errors.Wrap(err, "decoding answers")
		}
		if encoded == "" {
			*ans = Answers{}
			return nil
		}
		data = []byte(encoded)
	}
	m := make(map[string]int)
	if err := json.Unmarshal(data, &m); err != nil {
		return errors.Wrap(err, "decoding answers")
	}
	*ans = m
	return nil
}

type Attempt struct {
	ID        core.ID   `json:"id"`
	Test      Test      `json:"test"`
	Answers   Answers   `json:"answers"`
	Score     float64   `json:"score"`
	TimeSpent int       `json:"timeSpent"` // seconds
	StartTime null.Time `json:"startTime"`
}

// Submission is sent to the backend when a test is submitted.
type Submission struct {
	TestID    core.ID `json:"testId"`
	Answers   Answers `json:"answers"`
	TimeSpent int     `json:"timeSpent"` // seconds
}

// NewAttempt contains the answers posted by the viewer for a test.
type NewAttempt struct {
	Answers   Answers `json:"answers"`
	TimeSpent int     `json:"timeSpent" validate:"min=0"`
}
