package echoapi

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jaykayhn/jindo/core"
)

// sessionMiddleware authenticates requests from the signed session cookie and
// stores the parsed claims on the context.
func sessionMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cookie, err := ctx.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				return errSessionRequired
			}
			claims, err := parseSessionToken(cookie.Value, conf)
			if err != nil {
				return err
			}
			ctx.Set(contextClaimsKey, claims)
			return next(ctx)
		}
	}
}

// teacherMiddleware guards teacher-only endpoints with the static bearer token
// from the configuration.
func teacherMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if conf.Teacher.Token == "" {
				return errHttpForbidden
			}
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if token == header { // no Bearer prefix
				return errTeacherTokenRequired
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(conf.Teacher.Token)) != 1 {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}
