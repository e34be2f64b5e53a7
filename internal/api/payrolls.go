package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/halimou/patisserie/pkg/common"
	"github.com/labstack/echo/v4"
)

func (a *API) createPayroll(c echo.Context) error {
	var payload domain.PayrollCreate
	if err := c.Bind(&payload); err != nil {
		return bindFail(c, err)
	}
	if err := payload.Validate(); err != nil {
		return failErr(c, err)
	}

	ctx := c.Request().Context()
	// The employee reference is only validated here, at creation time. A
	// later deletion of the employee leaves the entry dangling on purpose.
	employeeID, err := strconv.ParseInt(payload.EmployeeID, 10, 64)
	if err != nil {
		return failErr(c, &domain.UnknownEmployeeError{ID: payload.EmployeeID})
	}
	exists, err := a.employees.Exists(ctx, employeeID)
	if err != nil {
		return failErr(c, err)
	}
	if !exists {
		return failErr(c, &domain.UnknownEmployeeError{ID: payload.EmployeeID})
	}

	p := domain.PayrollEntry{
		ID:         common.UUIDint64(),
		EmployeeID: employeeID,
		Period:     payload.Period,
		Advances:   payload.Advances,
		Paid:       payload.Paid,
		Notes:      payload.Notes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.payrolls.Create(ctx, &p); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) listPayrolls(c echo.Context) error {
	var employeeID int64
	if raw := c.QueryParam("employee_id"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			// An unparseable filter can never match a record.
			return c.JSON(http.StatusOK, []domain.PayrollEntry{})
		}
		employeeID = id
	}
	rows, err := a.payrolls.List(c.Request().Context(), employeeID, c.QueryParam("period"))
	if err != nil {
		return failErr(c, err)
	}
	if rows == nil {
		rows = []domain.PayrollEntry{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (a *API) updatePayroll(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "payroll not found")
	}
	var patch domain.PayrollPatch
	if err := c.Bind(&patch); err != nil {
		return bindFail(c, err)
	}
	updates, err := patch.Updates()
	if err != nil {
		return failErr(c, err)
	}
	ctx := c.Request().Context()
	if err := a.payrolls.Update(ctx, id, updates); err != nil {
		return failErr(c, err)
	}
	p, err := a.payrolls.GetByID(ctx, id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) deletePayroll(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "payroll not found")
	}
	if err := a.payrolls.Delete(c.Request().Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Payroll deleted successfully"})
}
