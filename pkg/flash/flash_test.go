package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	e.GET("/set", func(c echo.Context) error {
		Add(c, CategorySuccess, "Purchase complete!")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/get", func(c echo.Context) error {
		messages := Pop(c)
		if len(messages) == 0 {
			return c.NoContent(http.StatusNoContent)
		}
		return c.String(http.StatusOK, messages[0].Category+": "+messages[0].Text)
	})

	set := httptest.NewRecorder()
	e.ServeHTTP(set, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := set.Result().Cookies()
	require.NotEmpty(t, cookies)

	get := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	e.ServeHTTP(get, req)

	assert.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "success: Purchase complete!", get.Body.String())

	// consumed: a second read with the updated cookie comes back empty
	again := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, cookie := range get.Result().Cookies() {
		req.AddCookie(cookie)
	}
	e.ServeHTTP(again, req)

	assert.Equal(t, http.StatusNoContent, again.Code)
}
