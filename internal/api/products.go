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

func (a *API) createProduct(c echo.Context) error {
	var payload domain.ProductCreate
	if err := c.Bind(&payload); err != nil {
		return bindFail(c, err)
	}
	if err := payload.Validate(); err != nil {
		return failErr(c, err)
	}

	p := domain.Product{
		ID:          common.UUIDint64(),
		Name:        strings.TrimSpace(payload.Name),
		Category:    payload.Category,
		Price:       payload.Price,
		IsRecurring: payload.Recurring(),
		IsArchived:  false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := a.products.Create(c.Request().Context(), &p); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) listProducts(c echo.Context) error {
	includeArchived := cast.ToBool(c.QueryParam("include_archived"))
	rows, err := a.products.List(c.Request().Context(), includeArchived)
	if err != nil {
		return failErr(c, err)
	}
	if rows == nil {
		rows = []domain.Product{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (a *API) getProduct(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "product not found")
	}
	p, err := a.products.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) updateProduct(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "product not found")
	}
	var patch domain.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return bindFail(c, err)
	}
	updates, err := patch.Updates()
	if err != nil {
		return failErr(c, err)
	}
	ctx := c.Request().Context()
	if err := a.products.Update(ctx, id, updates); err != nil {
		return failErr(c, err)
	}
	p, err := a.products.GetByID(ctx, id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *API) deleteProduct(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if err := a.products.Delete(c.Request().Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
