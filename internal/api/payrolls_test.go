package api

import (
	"fmt"
	"testing"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollCreate(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/employees", `{"full_name":"Marie"}`)
	require.Equal(t, 200, rec.Code)
	emp := decode[domain.Employee](t, rec)

	rec = doJSON(t, e, "POST", "/api/payrolls", fmt.Sprintf(
		`{"employee_id":"%d","period":"2024-01","advances":500,"paid":1300,"notes":"acompte"}`, emp.ID))
	require.Equal(t, 200, rec.Code, rec.Body.String())
	entry := decode[domain.PayrollEntry](t, rec)
	assert.Equal(t, emp.ID, entry.EmployeeID)
	assert.Equal(t, "2024-01", entry.Period)
	assert.Equal(t, 500.0, entry.Advances)
	assert.Equal(t, 1300.0, entry.Paid)
	assert.NotZero(t, entry.ID)

	// Multiple entries for the same (employee, period) are permitted.
	rec = doJSON(t, e, "POST", "/api/payrolls", fmt.Sprintf(
		`{"employee_id":"%d","period":"2024-01","advances":100}`, emp.ID))
	assert.Equal(t, 200, rec.Code)
}

func TestPayrollUnknownEmployee(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/payrolls",
		`{"employee_id":"424242424242","period":"2024-01"}`)
	assert.Equal(t, 400, rec.Code)

	rec = doJSON(t, e, "POST", "/api/payrolls",
		`{"employee_id":"not-an-id","period":"2024-01"}`)
	assert.Equal(t, 400, rec.Code)

	// No record was created by the rejected writes.
	rec = doJSON(t, e, "GET", "/api/payrolls", "")
	require.Equal(t, 200, rec.Code)
	assert.Empty(t, decode[[]domain.PayrollEntry](t, rec))
}

func TestPayrollDanglingReference(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/employees", `{"full_name":"Parti"}`)
	require.Equal(t, 200, rec.Code)
	emp := decode[domain.Employee](t, rec)

	rec = doJSON(t, e, "POST", "/api/payrolls", fmt.Sprintf(
		`{"employee_id":"%d","period":"2024-02"}`, emp.ID))
	require.Equal(t, 200, rec.Code)

	// Deleting the employee leaves the historical entry in place.
	rec = doJSON(t, e, "DELETE", fmt.Sprintf("/api/employees/%d", emp.ID), "")
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, e, "GET", "/api/payrolls", "")
	require.Equal(t, 200, rec.Code)
	assert.Len(t, decode[[]domain.PayrollEntry](t, rec), 1)
}

func TestPayrollListFilters(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/employees", `{"full_name":"Un"}`)
	require.Equal(t, 200, rec.Code)
	one := decode[domain.Employee](t, rec)
	rec = doJSON(t, e, "POST", "/api/employees", `{"full_name":"Deux"}`)
	require.Equal(t, 200, rec.Code)
	two := decode[domain.Employee](t, rec)

	for _, body := range []string{
		fmt.Sprintf(`{"employee_id":"%d","period":"2024-01"}`, one.ID),
		fmt.Sprintf(`{"employee_id":"%d","period":"2024-01"}`, two.ID),
		fmt.Sprintf(`{"employee_id":"%d","period":"2024-02"}`, two.ID),
	} {
		rec = doJSON(t, e, "POST", "/api/payrolls", body)
		require.Equal(t, 200, rec.Code)
	}

	rec = doJSON(t, e, "GET", fmt.Sprintf("/api/payrolls?employee_id=%d", one.ID), "")
	require.Equal(t, 200, rec.Code)
	rows := decode[[]domain.PayrollEntry](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, one.ID, rows[0].EmployeeID)

	rec = doJSON(t, e, "GET", "/api/payrolls?period=2024-01", "")
	require.Equal(t, 200, rec.Code)
	assert.Len(t, decode[[]domain.PayrollEntry](t, rec), 2)

	rec = doJSON(t, e, "GET", fmt.Sprintf("/api/payrolls?employee_id=%d&period=2024-02", two.ID), "")
	require.Equal(t, 200, rec.Code)
	assert.Len(t, decode[[]domain.PayrollEntry](t, rec), 1)
}

func TestPayrollUpdateAndDelete(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/employees", `{"full_name":"Marie"}`)
	require.Equal(t, 200, rec.Code)
	emp := decode[domain.Employee](t, rec)

	rec = doJSON(t, e, "POST", "/api/payrolls", fmt.Sprintf(
		`{"employee_id":"%d","period":"2024-03","advances":200}`, emp.ID))
	require.Equal(t, 200, rec.Code)
	entry := decode[domain.PayrollEntry](t, rec)

	rec = doJSON(t, e, "PUT", fmt.Sprintf("/api/payrolls/%d", entry.ID),
		`{"advances":750,"notes":"Avance mise à jour"}`)
	require.Equal(t, 200, rec.Code)
	updated := decode[domain.PayrollEntry](t, rec)
	assert.Equal(t, 750.0, updated.Advances)
	assert.Equal(t, "Avance mise à jour", updated.Notes)
	assert.Equal(t, "2024-03", updated.Period, "unnamed fields stay untouched")

	rec = doJSON(t, e, "PUT", fmt.Sprintf("/api/payrolls/%d", entry.ID), `{}`)
	assert.Equal(t, 400, rec.Code)

	rec = doJSON(t, e, "DELETE", fmt.Sprintf("/api/payrolls/%d", entry.ID), "")
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, e, "GET", "/api/payrolls", "")
	require.Equal(t, 200, rec.Code)
	assert.Empty(t, decode[[]domain.PayrollEntry](t, rec))
}
