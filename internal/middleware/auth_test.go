package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.Use(ResolveSession)

	e.GET("/login-as/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := EstablishSession(c, id); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	e.GET("/logout", func(c echo.Context) error {
		if err := ClearSession(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	protected := e.Group("", RequireLogin)
	protected.GET("/cart", func(c echo.Context) error {
		return c.String(http.StatusOK, strconv.FormatInt(UserID(c), 10))
	})

	return e
}

func doRequest(e *echo.Echo, method, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireLogin_RedirectsWithNext(t *testing.T) {
	e := setupAuthTest()

	rec := doRequest(e, http.MethodGet, "/cart", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fcart", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireLogin_PassesWithSession(t *testing.T) {
	e := setupAuthTest()

	login := doRequest(e, http.MethodGet, "/login-as/42", nil)
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec := doRequest(e, http.MethodGet, "/cart", cookies)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
}

func TestClearSession_IsIdempotent(t *testing.T) {
	e := setupAuthTest()

	login := doRequest(e, http.MethodGet, "/login-as/42", nil)
	cookies := login.Result().Cookies()

	logout := doRequest(e, http.MethodGet, "/logout", cookies)
	require.Equal(t, http.StatusOK, logout.Code)
	cookies = logout.Result().Cookies()

	// logging out again with the cleared cookie is a no-op
	again := doRequest(e, http.MethodGet, "/logout", cookies)
	require.Equal(t, http.StatusOK, again.Code)

	rec := doRequest(e, http.MethodGet, "/cart", cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
}
