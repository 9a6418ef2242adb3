package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	custommw "github.com/minimarket/marketplace-service/internal/middleware"
	"github.com/minimarket/marketplace-service/pkg/flash"
)

// render hands a page to the template renderer, injecting the data every
// template needs: pending flash messages and the session identity.
func render(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Flashes"] = flash.Pop(c)
	data["UserID"] = custommw.UserID(c)

	return c.Render(http.StatusOK, name, data)
}

func redirectWithFlash(c echo.Context, category, text, target string) error {
	flash.Add(c, category, text)
	return c.Redirect(http.StatusFound, target)
}

func paramID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
