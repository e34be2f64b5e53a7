package api

import (
	"fmt"
	"testing"

	"github.com/halimou/patisserie/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/products",
		`{"name":"Croissant","category":"viennoiserie","price":1.2}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	p := decode[domain.Product](t, rec)
	assert.Equal(t, "Croissant", p.Name)
	assert.Equal(t, "viennoiserie", p.Category)
	assert.Equal(t, 1.2, p.Price)
	assert.True(t, p.IsRecurring, "is_recurring defaults to true")
	assert.False(t, p.IsArchived, "products always start non-archived")
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	rec = doJSON(t, e, "POST", "/api/products",
		`{"name":"Galette","category":"gâteau","price":18,"is_recurring":false}`)
	require.Equal(t, 200, rec.Code)
	assert.False(t, decode[domain.Product](t, rec).IsRecurring)
}

func TestProductCreateValidation(t *testing.T) {
	e, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"category":"autre","price":1}`},
		{"blank name", `{"name":"  ","category":"autre","price":1}`},
		{"missing category", `{"name":"Flan","price":1}`},
		{"negative price", `{"name":"Flan","category":"gâteau","price":-0.5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, e, "POST", "/api/products", tc.body)
			assert.Equal(t, 400, rec.Code, rec.Body.String())
		})
	}

	// Type mismatch is a shape failure, caught before domain validation.
	rec := doJSON(t, e, "POST", "/api/products",
		`{"name":"Flan","category":"gâteau","price":"cher"}`)
	assert.Equal(t, 422, rec.Code)
}

func TestProductArchiveVisibility(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/products",
		`{"name":"Éclair","category":"gâteau","price":3.5}`)
	require.Equal(t, 200, rec.Code)
	eclair := decode[domain.Product](t, rec)

	rec = doJSON(t, e, "POST", "/api/products",
		`{"name":"Brioche","category":"viennoiserie","price":2.1}`)
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, e, "PUT", fmt.Sprintf("/api/products/%d", eclair.ID),
		`{"is_archived":true}`)
	require.Equal(t, 200, rec.Code)

	// Hidden from the default listing.
	rec = doJSON(t, e, "GET", "/api/products", "")
	require.Equal(t, 200, rec.Code)
	listing := decode[[]domain.Product](t, rec)
	require.Len(t, listing, 1)
	assert.Equal(t, "Brioche", listing[0].Name)

	// Still present when asked for, and still fetchable by id.
	rec = doJSON(t, e, "GET", "/api/products?include_archived=true", "")
	require.Equal(t, 200, rec.Code)
	assert.Len(t, decode[[]domain.Product](t, rec), 2)

	rec = doJSON(t, e, "GET", fmt.Sprintf("/api/products/%d", eclair.ID), "")
	require.Equal(t, 200, rec.Code)
	assert.True(t, decode[domain.Product](t, rec).IsArchived)
}

func TestProductArchiveKeepsInventorySnapshots(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/products",
		`{"name":"Paris-Brest","category":"gâteau","price":4.5}`)
	require.Equal(t, 200, rec.Code)
	p := decode[domain.Product](t, rec)

	rec = doJSON(t, e, "POST", "/api/inventories", fmt.Sprintf(
		`{"date":"2024-07-01","products":[{"product_id":"%d","product_name":"Paris-Brest","category":"gâteau","quantity_sold":3,"price":4.5}]}`,
		p.ID))
	require.Equal(t, 200, rec.Code)

	// Rename, reprice and archive the catalog entry after the fact.
	rec = doJSON(t, e, "PUT", fmt.Sprintf("/api/products/%d", p.ID),
		`{"name":"Paris-Brest XL","price":6.0,"is_archived":true}`)
	require.Equal(t, 200, rec.Code)

	// The line embedded before archival keeps its write-time snapshot.
	rec = doJSON(t, e, "GET", "/api/inventories/2024-07-01", "")
	require.Equal(t, 200, rec.Code)
	inv := decode[domain.DailyInventory](t, rec)
	require.Len(t, inv.Products, 1)
	assert.Equal(t, "Paris-Brest", inv.Products[0].ProductName)
	assert.Equal(t, "gâteau", inv.Products[0].Category)
	assert.Equal(t, 4.5, inv.Products[0].Price)
	assert.InDelta(t, 13.5, inv.TotalRevenue, 0.01)
}

func TestProductPartialUpdate(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/products",
		`{"name":"Tarte","category":"gâteau","price":12}`)
	require.Equal(t, 200, rec.Code)
	tarte := decode[domain.Product](t, rec)

	rec = doJSON(t, e, "PUT", fmt.Sprintf("/api/products/%d", tarte.ID),
		`{"price":14.5}`)
	require.Equal(t, 200, rec.Code)
	updated := decode[domain.Product](t, rec)
	assert.Equal(t, 14.5, updated.Price)
	assert.Equal(t, "Tarte", updated.Name, "unnamed fields stay untouched")
	assert.Equal(t, "gâteau", updated.Category)

	// Zero recognized fields is a no-op update and gets rejected.
	rec = doJSON(t, e, "PUT", fmt.Sprintf("/api/products/%d", tarte.ID), `{}`)
	assert.Equal(t, 400, rec.Code)

	rec = doJSON(t, e, "PUT", "/api/products/999999", `{"price":1}`)
	assert.Equal(t, 404, rec.Code)
}

func TestProductDelete(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, "POST", "/api/products",
		`{"name":"Chausson","category":"viennoiserie","price":1.8}`)
	require.Equal(t, 200, rec.Code)
	p := decode[domain.Product](t, rec)

	rec = doJSON(t, e, "DELETE", fmt.Sprintf("/api/products/%d", p.ID), "")
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, e, "GET", fmt.Sprintf("/api/products/%d", p.ID), "")
	assert.Equal(t, 404, rec.Code)

	rec = doJSON(t, e, "DELETE", fmt.Sprintf("/api/products/%d", p.ID), "")
	assert.Equal(t, 404, rec.Code)

	rec = doJSON(t, e, "GET", "/api/products/not-an-id", "")
	assert.Equal(t, 404, rec.Code)
}
