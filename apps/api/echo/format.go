package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
)

// Format kinds
const (
	kindTime     = "time"
	kindDate     = "date"
	kindRelative = "relative"
)

type formatView struct {
	Kind      string `json:"kind"`
	Mode      string `json:"mode,omitempty"`
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

func registerFormatAPI(g *echo.Group, dates *datefmt.Formatter) {
	g.GET("/format", formatHandler(dates))
}

// formatHandler renders ?value= as a time, a date (in ?mode=) or a relative time, depending on ?kind=.
func formatHandler(dates *datefmt.Formatter) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		view := formatView{
			Kind:  core.CleanString(ctx.QueryParam("kind"), true),
			Mode:  core.CleanString(ctx.QueryParam("mode"), true),
			Value: ctx.QueryParam("value"),
		}
		if view.Kind == "" {
			view.Kind = kindDate
		}

		switch view.Kind {
		case kindTime:
			view.Formatted = dates.FormatTime(view.Value)
		case kindDate:
			if view.Mode == "" {
				view.Formatted = dates.FormatDate(view.Value)
				break
			}
			view.Formatted = dates.FormatDate(view.Value, datefmt.Mode(view.Mode))
		case kindRelative:
			view.Formatted = dates.FormatRelativeTime(view.Value)
		default:
			return core.NewValidationError(nil, core.FieldError{Field: "kind", Error: "kind must be one of [time date relative]"})
		}
		return ctx.JSON(http.StatusOK, view)
	}
}
