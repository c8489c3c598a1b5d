package main

import (
	"context"
	"fmt"

	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/studyplan"
)

// today prints the study plan of the day: sessions, then tasks due today & upcoming ones.
func (cli *commandLine) today(ctx context.Context, token, subject string) error {
	dash, err := cli.planSvc.Dashboard(ctx, token, subject)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Today, %s\n", cli.dates.FormatDate(dash.Now, datefmt.Full))

	fmt.Fprintln(cli.out, "\nSessions:")
	if len(dash.Sessions) == 0 {
		fmt.Fprintln(cli.out, "  no sessions scheduled")
	}
	for _, s := range dash.Sessions {
		title := "untitled"
		if s.Task != nil {
			title = s.Task.Title
		}
		line := fmt.Sprintf("  %s - %s  %s", cli.dates.FormatTime(s.StartTime), cli.dates.FormatTime(s.EndTime), title)
		if s.Goal != "" {
			line += " (" + s.Goal + ")"
		}
		fmt.Fprintln(cli.out, line)
	}

	fmt.Fprintln(cli.out, "\nDue today:")
	if len(dash.Today) == 0 {
		fmt.Fprintln(cli.out, "  nothing due")
	}
	for _, t := range dash.Today {
		fmt.Fprintf(cli.out, "  [%s] %s\n", priorityLabel(t.Priority), t.Title)
	}

	fmt.Fprintln(cli.out, "\nUpcoming:")
	if len(dash.Upcoming) == 0 {
		fmt.Fprintln(cli.out, "  nothing upcoming")
	}
	for _, t := range dash.Upcoming {
		fmt.Fprintf(cli.out, "  %s  %s\n", cli.dates.FormatDate(t.DueDate, datefmt.MonthDay), t.Title)
	}
	return nil
}

func priorityLabel(p studyplan.Priority) string {
	if p = p.Normalize(); p == "" {
		return "-"
	}
	return string(p)
}
