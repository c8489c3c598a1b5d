package modeltest

type (
	QuestionResult struct {
		Question   Question
		UserAnswer *int
		IsCorrect  bool
	}

	// Breakdown is the share of correctly answered questions of a subject or topic.
	Breakdown struct {
		Name    string `json:"name"`
		Correct int    `json:"correct"`
		Total   int    `json:"total"`
		Percent int    `json:"percent"`
	}

	Results struct {
		Attempt      Attempt
		Questions    []QuestionResult
		Correct      int
		Incorrect    int
		Unanswered   int
		ScorePercent int
		Passed       bool
		Subjects     []Breakdown
		Topics       []Breakdown
	}
)

// ComputeResults grades an attempt against its test's questions.
// Every subject of the test gets a breakdown, topics without questions are left out.
func ComputeResults(attempt Attempt) Results {
	test := attempt.Test
	res := Results{
		Attempt:      attempt,
		Questions:    make([]QuestionResult, 0, len(test.Questions)),
		ScorePercent: percent(attempt.Score, test.TotalPoints),
		Passed:       attempt.Score >= test.PassingScore,
		Subjects:     make([]Breakdown, 0, len(test.Subjects)),
		Topics:       make([]Breakdown, 0, len(test.Topics)),
	}

	for _, q := range test.Questions {
		qr := QuestionResult{Question: q}
		if opt, ok := attempt.Answers[string(q.ID)]; ok {
			opt := opt
			qr.UserAnswer = &opt
			qr.IsCorrect = opt == q.CorrectAnswer
		}
		switch {
		case qr.IsCorrect:
			res.Correct++
		case qr.UserAnswer == nil:
			res.Unanswered++
		default:
			res.Incorrect++
		}
		res.Questions = append(res.Questions, qr)
	}

	for _, subject := range test.Subjects {
		res.Subjects = append(res.Subjects, breakdown(subject, res.Questions, func(q Question) string { return q.Subject }))
	}
	for _, topic := range test.Topics {
		if b := breakdown(topic, res.Questions, func(q Question) string { return q.Topic }); b.Total > 0 {
			res.Topics = append(res.Topics, b)
		}
	}
	return res
}

func breakdown(name string, results []QuestionResult, key func(Question) string) Breakdown {
	b := Breakdown{Name: name}
	for _, qr := range results {
		if key(qr.Question) != name {
			continue
		}
		b.Total++
		if qr.IsCorrect {
			b.Correct++
		}
	}
	b.Percent = percent(float64(b.Correct), float64(b.Total))
	return b
}
