package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/studyplan"
)

var now = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// planBackend serves a fixed study plan & records the tokens it receives.
type planBackend struct {
	studyplan.Backend // only the read endpoints are served
	tokens            chan string
}

func (b *planBackend) ListTasks(_ context.Context, token string) ([]studyplan.Task, error) {
	b.tokens <- token
	return []studyplan.Task{
		{ID: "1", Title: "Algebra drills", Priority: "high", Status: studyplan.StatusPending, DueDate: null.TimeFrom(now.Add(4 * time.Hour))},
		{ID: "2", Title: "Organic chem", Status: studyplan.StatusPending, DueDate: null.TimeFrom(now.Add(96 * time.Hour))},
	}, nil
}

func (b *planBackend) TodaySessions(_ context.Context, token string) ([]studyplan.Session, error) {
	b.tokens <- token
	return []studyplan.Session{
		{ID: "s1", TaskID: "1", StartTime: null.TimeFrom(now.Add(35 * time.Minute)), EndTime: null.TimeFrom(now.Add(90 * time.Minute)), Goal: "chapter 2"},
	}, nil
}

func setup(t *testing.T) (*commandLine, *bytes.Buffer, *planBackend) {
	t.Helper()
	var out bytes.Buffer
	backend := &planBackend{tokens: make(chan string, 10)}
	validate, _ := core.NewValidator()
	dates := datefmt.New(datefmt.WithClock(func() time.Time { return now }), datefmt.WithLocation(time.UTC))
	return &commandLine{
		out:     &out,
		dates:   dates,
		planSvc: studyplan.NewService(backend, validate, dates),
	}, &out, backend
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runTests(t *testing.T, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		args := append([]string{"examprep"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out, _ := setup(t)
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				assert.EqualError(t, err, tt.wantErrStr)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOut, out.String())
			}
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	runTests(t, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
	})
}

func Test_commandLine_format(t *testing.T) {
	const instant = "2025-01-05T14:05:00Z"
	runTests(t, []cliTest{
		{name: "no value", args: []string{"format"}, wantErr: errHelp},
		{name: "date", args: []string{"format", instant}, wantOut: "January 5, 2025\n"},
		{name: "short date", args: []string{"format", "-mode", "short", instant}, wantOut: "Jan 5\n"},
		{name: "month-day", args: []string{"format", "-kind", "date", "-mode", "month-day", instant}, wantOut: "January 5\n"},
		{name: "time", args: []string{"format", "-kind", "time", instant}, wantOut: "2:05 PM\n"},
		{name: "relative", args: []string{"format", "-kind", "relative", "2025-03-10T06:30:00Z"}, wantOut: "3 hours ago\n"},
		{name: "invalid value", args: []string{"format", "-kind", "time", "lol"}, wantOut: "--\n"},
		{name: "unknown kind", args: []string{"format", "-kind", "lol", instant}, wantErrStr: `"lol": no such kind`},
	})
}

func Test_commandLine_countdown(t *testing.T) {
	runTests(t, []cliTest{
		{name: "no args", args: []string{"countdown"}, wantErr: errHelp},
		{name: "not a number", args: []string{"countdown", "lol"}, wantErrStr: "seconds must be a number (got 'lol')"},
		{name: "minutes", args: []string{"countdown", "125"}, wantOut: "02:05\n"},
		{name: "over an hour", args: []string{"countdown", "5400"}, wantOut: "90:00\n"},
		{name: "negative", args: []string{"countdown", "-3"}, wantOut: "00:00\n"},
	})
}

func Test_commandLine_today(t *testing.T) {
	wantOut := `Today, March 10, 2025

Sessions:
  10:05 AM - 11:00 AM  Algebra drills (chapter 2)

Due today:
  [HIGH] Algebra drills

Upcoming:
  March 14  Organic chem
`

	t.Run("token flag", func(t *testing.T) {
		cli, out, backend := setup(t)
		readPasswordFunc = func(int) ([]byte, error) {
			t.Fatal("token should not be prompted")
			return nil, nil
		}

		assert.NoError(t, cli.run([]string{"examprep", "today", "-token", "tok3n"}))
		assert.Equal(t, wantOut, out.String())
		assert.Equal(t, "tok3n", <-backend.tokens)
		assert.Equal(t, "tok3n", <-backend.tokens)
	})

	t.Run("prompted token", func(t *testing.T) {
		cli, out, backend := setup(t)
		readPasswordFunc = func(int) ([]byte, error) { return []byte(" s3cret \n"), nil }

		assert.NoError(t, cli.run([]string{"examprep", "today"}))
		assert.Equal(t, "Enter token:\n"+wantOut, out.String())
		assert.Equal(t, "s3cret", <-backend.tokens)
	})

	t.Run("empty prompted token", func(t *testing.T) {
		cli, _, _ := setup(t)
		readPasswordFunc = func(int) ([]byte, error) { return nil, nil }

		assert.Equal(t, errHelp, cli.run([]string{"examprep", "today"}))
	})
}
