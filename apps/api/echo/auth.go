package echoapi

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/examprep/core"
)

const (
	authScheme       = "Bearer"
	contextTokenKey  = "token"
	contextViewerKey = "viewer"
)

// Claims are the claims of the backend's tokens naming the viewer.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (c Claims) Viewer() core.Viewer {
	return core.Viewer{ID: c.Subject, Username: c.Username, Email: c.Email}
}

// bearerAuth requires a bearer token & stores it, with the viewer it names, in the context.
// Tokens are only verified by the backend, claims are read as they come.
func bearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
		l := len(authScheme)
		if len(auth) <= l+1 || !strings.EqualFold(auth[:l], authScheme) || auth[l] != ' ' {
			return errUnauthorized
		}
		token := strings.TrimSpace(auth[l+1:])

		claims := new(Claims)
		if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
			return errUnauthorized
		}
		ctx.Set(contextTokenKey, token)
		ctx.Set(contextViewerKey, claims.Viewer())
		return next(ctx)
	}
}

func contextToken(ctx echo.Context) string {
	token, _ := ctx.Get(contextTokenKey).(string)
	return token
}

// contextViewer returns the viewer of an authenticated request, a zero Viewer otherwise.
func contextViewer(ctx echo.Context) core.Viewer {
	viewer, _ := ctx.Get(contextViewerKey).(core.Viewer)
	return viewer
}
