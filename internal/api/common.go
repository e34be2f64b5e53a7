package api

import (
	"net/http"
	"strconv"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func fail(c echo.Context, status int, detail string) error {
	return c.JSON(status, errorBody{Detail: detail})
}

// failErr converts a domain failure into its status code. Anything that is
// neither a validation failure nor a miss is a store fault and surfaces as
// a plain 500; there is no retry at this layer.
func failErr(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return fail(c, http.StatusNotFound, err.Error())
	case domain.IsDomainValidation(err):
		return fail(c, http.StatusBadRequest, err.Error())
	default:
		zap.L().Error("store operation failed",
			zap.String("path", c.Path()),
			zap.Error(err))
		return fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindFail answers a malformed or mistyped request body. This fires before
// any domain logic runs.
func bindFail(c echo.Context, err error) error {
	return fail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
}

// parseID parses an opaque id path segment. Unparseable ids cannot match any
// record, so callers answer them as not found.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
