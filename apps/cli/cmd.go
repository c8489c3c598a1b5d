package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/studyplan"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out     io.Writer
	dates   *datefmt.Formatter
	planSvc *studyplan.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  format -kind time|date|relative [-mode full|short|month-day] VALUE - format a timestamp")
	fmt.Fprintln(cli.out, "  countdown SECONDS - print the remaining time of a test as MM:SS")
	fmt.Fprintln(cli.out, "  today [-token TOKEN] [-subject SUBJECT] - print today's study plan, the token is prompted when omitted")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	formatCmd := flag.NewFlagSet("format", flag.ExitOnError)
	formatKind := formatCmd.String("kind", "date", "What to render: time, date or relative.")
	formatMode := formatCmd.String("mode", "", "The date mode: full, short or month-day.")

	todayCmd := flag.NewFlagSet("today", flag.ExitOnError)
	todayToken := todayCmd.String("token", "", "The bearer token sent to the backend. Prompted when omitted.")
	todaySubject := todayCmd.String("subject", studyplan.SubjectAll, "Only show this subject area.")

	for _, fs := range []*flag.FlagSet{formatCmd, todayCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "format":
		if err := formatCmd.Parse(args[2:]); err != nil {
			return err
		}
		if formatCmd.NArg() != 1 {
			formatCmd.Usage()
			return errHelp
		}
		formatted, err := cli.format(*formatKind, *formatMode, formatCmd.Arg(0))
		if err != nil {
			return err
		}
		fmt.Fprintln(cli.out, formatted)
		return nil

	case "countdown":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		seconds, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("seconds must be a number (got '%s')", args[2])
		}
		fmt.Fprintln(cli.out, datefmt.Countdown(seconds))
		return nil

	case "today":
		if err := todayCmd.Parse(args[2:]); err != nil {
			return err
		}
		token := *todayToken
		if token == "" {
			fmt.Fprint(cli.out, "Enter token:")
			raw, err := readPasswordFunc(int(syscall.Stdin))
			fmt.Fprintln(cli.out)
			if err != nil {
				return err
			}
			if token = strings.TrimSpace(string(raw)); token == "" {
				todayCmd.Usage()
				return errHelp
			}
		}
		return cli.today(context.Background(), token, *todaySubject)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) format(kind, mode, value string) (string, error) {
	switch kind {
	case "time":
		return cli.dates.FormatTime(value), nil
	case "date":
		if mode == "" {
			return cli.dates.FormatDate(value), nil
		}
		return cli.dates.FormatDate(value, datefmt.Mode(mode)), nil
	case "relative":
		return cli.dates.FormatRelativeTime(value), nil
	default:
		return "", fmt.Errorf("%q: no such kind", kind)
	}
}
