package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/halimou/patisserie/pkg/common"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

func (a *API) createEmployee(c echo.Context) error {
	var payload domain.EmployeeCreate
	if err := c.Bind(&payload); err != nil {
		return bindFail(c, err)
	}
	if err := payload.Validate(); err != nil {
		return failErr(c, err)
	}

	active := true
	e := domain.Employee{
		ID:         common.UUIDint64(),
		FullName:   strings.TrimSpace(payload.FullName),
		Role:       payload.Role,
		BaseSalary: payload.BaseSalary,
		IsActive:   &active,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.employees.Create(c.Request().Context(), &e); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (a *API) listEmployees(c echo.Context) error {
	includeInactive := cast.ToBool(c.QueryParam("include_inactive"))
	rows, err := a.employees.List(c.Request().Context(), includeInactive)
	if err != nil {
		return failErr(c, err)
	}
	if rows == nil {
		rows = []domain.Employee{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (a *API) getEmployee(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "employee not found")
	}
	e, err := a.employees.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (a *API) updateEmployee(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "employee not found")
	}
	var patch domain.EmployeePatch
	if err := c.Bind(&patch); err != nil {
		return bindFail(c, err)
	}
	updates, err := patch.Updates()
	if err != nil {
		return failErr(c, err)
	}
	ctx := c.Request().Context()
	if err := a.employees.Update(ctx, id, updates); err != nil {
		return failErr(c, err)
	}
	e, err := a.employees.GetByID(ctx, id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (a *API) deleteEmployee(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "employee not found")
	}
	if err := a.employees.Delete(c.Request().Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
