package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/minimarket/marketplace-service/pkg/flash"
)

const (
	sessionUserKey = "user_id"
	contextUserKey = "userID"
)

// ResolveSession reads the authenticated user id out of the cookie session
// and stashes it on the echo context for handlers and templates.
func ResolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get("session", c)
		if err == nil {
			if id, ok := sess.Values[sessionUserKey].(int64); ok && id != 0 {
				c.Set(contextUserKey, id)
			}
		}
		return next(c)
	}
}

// RequireLogin guards protected routes: without a session identity the
// request is redirected to the login page, preserving the originally
// requested destination.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if UserID(c) == 0 {
			flash.Add(c, flash.CategoryWarning, "Please log in to continue.")
			return c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request().URL.Path))
		}
		return next(c)
	}
}

// UserID returns the authenticated user's id, or 0 when the request carries
// no identity.
func UserID(c echo.Context) int64 {
	if id, ok := c.Get(contextUserKey).(int64); ok {
		return id
	}
	return 0
}

// EstablishSession records the user id as the session identity.
func EstablishSession(c echo.Context, userID int64) error {
	sess, err := session.Get("session", c)
	if err != nil {
		return err
	}

	sess.Values[sessionUserKey] = userID

	return sess.Save(c.Request(), c.Response())
}

// ClearSession drops the session identity; clearing an absent identity is a
// no-op.
func ClearSession(c echo.Context) error {
	sess, err := session.Get("session", c)
	if err != nil {
		return err
	}

	delete(sess.Values, sessionUserKey)

	return sess.Save(c.Request(), c.Response())
}
