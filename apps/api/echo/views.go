package echoapi

import (
	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/modeltest"
	"github.com/trezcool/examprep/core/studyplan"
)

const (
	statusPassed = "PASSED"
	statusFailed = "FAILED"
)

// Model Tests

type (
	testView struct {
		ID             core.ID              `json:"id"`
		Title          string               `json:"title"`
		Description    string               `json:"description"`
		Subjects       []string             `json:"subjects"`
		Topics         []string             `json:"topics"`
		Difficulty     modeltest.Difficulty `json:"difficulty"`
		TimeLimit      int                  `json:"timeLimit"`
		Duration       string               `json:"duration"`
		QuestionsCount int                  `json:"questionsCount"`
		PassingScore   float64              `json:"passingScore"`
		IsCustom       bool                 `json:"isCustom"`
	}

	testListView struct {
		Count           int        `json:"count"`
		Tests           []testView `json:"tests"`
		AvailableTopics []string   `json:"availableTopics"`
	}

	questionView struct {
		ID       core.ID  `json:"id"`
		Number   int      `json:"number"`
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Points   float64  `json:"points"`
		Subject  string   `json:"subject"`
		Topic    string   `json:"topic"`
		Answer   *int     `json:"answer"`
		Flagged  bool     `json:"flagged"`
	}

	sessionView struct {
		Test      testView           `json:"test"`
		Countdown string             `json:"countdown"`
		Remaining int                `json:"remaining"`
		LowTime   bool               `json:"lowTime"`
		Current   int                `json:"current"`
		Progress  modeltest.Progress `json:"progress"`
		Questions []questionView     `json:"questions"`
	}

	questionResultView struct {
		ID            core.ID  `json:"id"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		UserAnswer    *int     `json:"userAnswer"`
		CorrectAnswer int      `json:"correctAnswer"`
		IsCorrect     bool     `json:"isCorrect"`
		Explanation   string   `json:"explanation"`
	}

	resultsView struct {
		AttemptID    core.ID               `json:"attemptId"`
		Test         testView              `json:"test"`
		DateTaken    string                `json:"dateTaken"`
		TimeSpent    string                `json:"timeSpent"`
		Score        float64               `json:"score"`
		TotalPoints  float64               `json:"totalPoints"`
		ScorePercent int                   `json:"scorePercent"`
		Status       string                `json:"status"`
		Correct      int                   `json:"correct"`
		Incorrect    int                   `json:"incorrect"`
		Unanswered   int                   `json:"unanswered"`
		Subjects     []modeltest.Breakdown `json:"subjects"`
		Topics       []modeltest.Breakdown `json:"topics"`
		Questions    []questionResultView  `json:"questions"`
	}
)

func newTestView(t modeltest.Test) testView {
	return testView{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Subjects:       nonNil(t.Subjects),
		Topics:         nonNil(t.Topics),
		Difficulty:     t.Difficulty,
		TimeLimit:      t.TimeLimit,
		Duration:       datefmt.TimeSpent(t.TimeLimitSeconds()),
		QuestionsCount: t.QuestionsCount,
		PassingScore:   t.PassingScore,
		IsCustom:       t.IsCustom,
	}
}

func newTestListView(tests []modeltest.Test, subjects []string) testListView {
	views := make([]testView, 0, len(tests))
	for _, t := range tests {
		views = append(views, newTestView(t))
	}
	return testListView{
		Count:           len(views),
		Tests:           views,
		AvailableTopics: modeltest.AvailableTopics(subjects, modeltest.TopicsBySubject(tests)),
	}
}

func newSessionView(sess *modeltest.Session) sessionView {
	questions := make([]questionView, 0, sess.Total())
	for i, q := range sess.Questions() {
		qv := questionView{
			ID:       q.ID,
			Number:   i + 1,
			Question: q.Question,
			Options:  nonNil(q.Options),
			Points:   q.Points,
			Subject:  q.Subject,
			Topic:    q.Topic,
			Flagged:  sess.Flagged(i),
		}
		if opt, ok := sess.AnswerAt(i); ok {
			qv.Answer = &opt
		}
		questions = append(questions, qv)
	}
	return sessionView{
		Test:      newTestView(sess.Test()),
		Countdown: datefmt.Countdown(sess.Remaining()),
		Remaining: sess.Remaining(),
		LowTime:   sess.IsLowTime(),
		Current:   sess.CurrentIndex(),
		Progress:  sess.Progress(),
		Questions: questions,
	}
}

func newResultsView(res modeltest.Results, dates *datefmt.Formatter) resultsView {
	questions := make([]questionResultView, 0, len(res.Questions))
	for _, qr := range res.Questions {
		questions = append(questions, questionResultView{
			ID:            qr.Question.ID,
			Question:      qr.Question.Question,
			Options:       nonNil(qr.Question.Options),
			UserAnswer:    qr.UserAnswer,
			CorrectAnswer: qr.Question.CorrectAnswer,
			IsCorrect:     qr.IsCorrect,
			Explanation:   qr.Question.Explanation,
		})
	}
	status := statusFailed
	if res.Passed {
		status = statusPassed
	}
	return resultsView{
		AttemptID:    res.Attempt.ID,
		Test:         newTestView(res.Attempt.Test),
		DateTaken:    dates.FormatDate(res.Attempt.StartTime),
		TimeSpent:    datefmt.TimeSpent(res.Attempt.TimeSpent),
		Score:        res.Attempt.Score,
		TotalPoints:  res.Attempt.Test.TotalPoints,
		ScorePercent: res.ScorePercent,
		Status:       status,
		Correct:      res.Correct,
		Incorrect:    res.Incorrect,
		Unanswered:   res.Unanswered,
		Subjects:     res.Subjects,
		Topics:       res.Topics,
		Questions:    questions,
	}
}

// Study Plan

type (
	taskView struct {
		ID            core.ID            `json:"id"`
		Title         string             `json:"title"`
		Description   string             `json:"description"`
		SubjectArea   string             `json:"subjectArea"`
		Priority      studyplan.Priority `json:"priority"`
		Status        studyplan.Status   `json:"status"`
		Due           string             `json:"due"`
		EstimatedTime int                `json:"estimatedTime"`
		CreatedAgo    string             `json:"createdAgo"`
		Completed     string             `json:"completed,omitempty"`
	}

	studySessionView struct {
		ID        core.ID `json:"id"`
		TaskID    core.ID `json:"taskId"`
		Title     string  `json:"title"`
		Subject   string  `json:"subject"`
		Goal      string  `json:"goal"`
		StartTime string  `json:"startTime"`
		EndTime   string  `json:"endTime"`
		Duration  int     `json:"duration"`
		Completed bool    `json:"completed"`
	}

	dashboardView struct {
		Date      string             `json:"date"`
		Subject   string             `json:"subject"`
		Today     []taskView         `json:"today"`
		Upcoming  []taskView         `json:"upcoming"`
		Completed []taskView         `json:"completed"`
		Sessions  []studySessionView `json:"sessions"`
		Progress  studyplan.Progress `json:"progress"`
	}
)

func newTaskView(t studyplan.Task, dates *datefmt.Formatter, dueMode datefmt.Mode) taskView {
	tv := taskView{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		SubjectArea:   t.SubjectArea,
		Priority:      t.Priority.Normalize(),
		Status:        t.Status.Normalize(),
		Due:           dates.FormatDate(t.DueDate, dueMode),
		EstimatedTime: t.EstimatedTime,
		CreatedAgo:    dates.FormatRelativeTime(t.CreatedAt),
	}
	if t.IsCompleted() {
		tv.Completed = dates.FormatDate(t.CompletedAt, datefmt.Short)
	}
	return tv
}

func newTaskViews(tasks []studyplan.Task, dates *datefmt.Formatter, dueMode datefmt.Mode) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t, dates, dueMode))
	}
	return views
}

func newDashboardView(dash studyplan.Dashboard, selected interface{}, subject string, dates *datefmt.Formatter) dashboardView {
	sessions := make([]studySessionView, 0, len(dash.Sessions))
	for _, s := range dash.Sessions {
		sv := studySessionView{
			ID:        s.ID,
			TaskID:    s.TaskID,
			Goal:      s.Goal,
			StartTime: dates.FormatTime(s.StartTime),
			EndTime:   dates.FormatTime(s.EndTime),
			Duration:  s.Duration,
			Completed: s.Completed,
		}
		if s.Task != nil {
			sv.Title = s.Task.Title
			sv.Subject = s.Task.SubjectArea
		}
		sessions = append(sessions, sv)
	}
	if subject == "" {
		subject = studyplan.SubjectAll
	}
	return dashboardView{
		Date:      dates.FormatDate(selected, datefmt.Full),
		Subject:   subject,
		Today:     newTaskViews(dash.Today, dates, datefmt.Full),
		Upcoming:  newTaskViews(dash.Upcoming, dates, datefmt.MonthDay),
		Completed: newTaskViews(dash.Completed, dates, datefmt.Short),
		Sessions:  sessions,
		Progress:  dash.Progress,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
