package logsvc

import (
	"fmt"
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/examprep/core"
)

// RollbarLogger prints every entry through std & reports it to rollbar when enabled.
type RollbarLogger struct {
	std     *log.Logger
	enabled bool
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.AppName)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)

	l := &RollbarLogger{std: std}
	l.Enable(conf.RollbarToken != "" && !conf.Debug && !conf.TestMode)
	return l
}

func (l *RollbarLogger) Enable(enabled bool) {
	l.enabled = enabled
	rollbar.SetEnabled(enabled)
}

// Close flushes the pending reports.
func (l *RollbarLogger) Close() {
	if l.enabled {
		rollbar.Close()
	}
}

// split separates the Viewer (the first one wins) from the other args.
func split(args []interface{}) (*core.Viewer, []interface{}) {
	var viewer *core.Viewer
	rest := make([]interface{}, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case core.Viewer:
			if viewer == nil {
				viewer = &v
			}
		case *core.Viewer:
			if viewer == nil && v != nil {
				viewer = v
			}
		default:
			rest = append(rest, arg)
		}
	}
	return viewer, rest
}

func (l *RollbarLogger) report(level string, send func(...interface{}), msg string, args []interface{}) {
	viewer, rest := split(args)
	l.print(level, msg, viewer, rest)
	if !l.enabled {
		return
	}

	if viewer != nil {
		rollbar.SetPerson(viewer.ID, viewer.Username, viewer.Email)
	} else {
		rollbar.ClearPerson()
	}
	send(append([]interface{}{msg}, rest...)...)
}

func (l *RollbarLogger) print(level, msg string, viewer *core.Viewer, args []interface{}) {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if viewer != nil {
		line += fmt.Sprintf(" (viewer: %s)", viewer.Username)
	}
	l.std.Println(line)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	l.report("debug", rollbar.Debug, msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	l.report("info", rollbar.Info, msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	l.report("warning", rollbar.Warning, msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	l.report("error", rollbar.Error, msg, args)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.report("critical", rollbar.Critical, msg, args)
	l.Close()
	l.std.Fatal(msg)
}
