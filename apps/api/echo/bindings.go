package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/modeltest"
)

const (
	orderingParam   = "ordering"
	searchParam     = "search"
	subjectParam    = "subject"
	difficultyParam = "difficulty"
	dateParam       = "date"

	datePickerLayout = "2006-01-02"
)

func bindOrderings(ctx echo.Context) []core.Ordering {
	return core.ParseOrderings(ctx.QueryParam(orderingParam))
}

// bindTestFilter reads the filter of the model tests screen, subject may be repeated.
func bindTestFilter(ctx echo.Context) modeltest.Filter {
	var subjects []string
	for _, s := range ctx.QueryParams()[subjectParam] {
		if s = core.CleanString(s); s != "" {
			subjects = append(subjects, s)
		}
	}
	return modeltest.Filter{
		Search:     ctx.QueryParam(searchParam),
		Subjects:   subjects,
		Difficulty: modeltest.Difficulty(core.CleanString(ctx.QueryParam(difficultyParam), true)),
	}
}

// bindDate reads the selected day of the study plan screen. Date picker values (YYYY-MM-DD) are days
// of the display location, full timestamps are accepted too. It defaults to now.
func bindDate(ctx echo.Context, dates *datefmt.Formatter) (time.Time, error) {
	val := core.CleanString(ctx.QueryParam(dateParam))
	if val == "" {
		return dates.Now(), nil
	}
	if day, err := time.ParseInLocation(datePickerLayout, val, dates.Location()); err == nil {
		return day, nil
	}
	if t, ok := dates.Instant(val); ok {
		return t, nil
	}
	return time.Time{}, core.NewValidationError(nil, core.FieldError{Field: dateParam, Error: "invalid date"})
}
