package app

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/minimarket/marketplace-service/pkg/errs"
)

// httpErrorHandler turns errors that escape a handler into plain status
// responses. Sentinel errors resolve through the errs status table; echo's
// own errors keep their code.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := errs.GetErrorStatusCode(err)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	if err := c.String(code, http.StatusText(code)); err != nil {
		log.Error().Err(err).Str("component", "httpErrorHandler").Msg("")
	}
}
