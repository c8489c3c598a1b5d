package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/modeltest"
	"github.com/trezcool/examprep/core/studyplan"
)

var (
	errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
	errBadUpstream  = echo.NewHTTPError(http.StatusBadGateway, "backend unavailable")
)

// domainStatus returns the HTTP status of the domain sentinel errors, 0 for any other error.
func domainStatus(err error) int {
	switch err {
	case modeltest.ErrTestNotFound, modeltest.ErrAttemptNotFound, studyplan.ErrTaskNotFound:
		return http.StatusNotFound
	case modeltest.ErrNoQuestions:
		return http.StatusUnprocessableEntity
	}
	return 0
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(translator ut.Translator, logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := errors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *core.UpstreamError:
			if origErr.StatusCode >= http.StatusInternalServerError {
				code = errBadUpstream.Code
				message = errBadUpstream.Message
				logger.Error(err.Error(), err, contextViewer(ctx))
				break
			}
			code = origErr.StatusCode
			message = http.StatusText(origErr.StatusCode)
		default:
			if status := domainStatus(cause); status != 0 {
				code = status
				message = cause.Error()
				break
			}

			// any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			logger.Error(msg, errors.Wrap(err, msg), contextViewer(ctx))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
