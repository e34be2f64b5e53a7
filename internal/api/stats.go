package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *API) statsSummary(c echo.Context) error {
	summary, err := a.stats.Summarize(
		c.Request().Context(),
		c.QueryParam("start_date"),
		c.QueryParam("end_date"),
	)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (a *API) statsProduct(c echo.Context) error {
	history, err := a.stats.History(
		c.Request().Context(),
		c.Param("id"),
		c.QueryParam("start_date"),
		c.QueryParam("end_date"),
	)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

func (a *API) export(c echo.Context) error {
	dump, err := a.stats.ExportRange(
		c.Request().Context(),
		c.QueryParam("start_date"),
		c.QueryParam("end_date"),
	)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, dump)
}
