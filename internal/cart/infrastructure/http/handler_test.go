package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/forsage-shop/storefront/internal/cart/application"
	catalogapp "github.com/forsage-shop/storefront/internal/catalog/application"
	catalogdomain "github.com/forsage-shop/storefront/internal/catalog/domain"
)

type staticSource []catalogdomain.Product

func (s staticSource) Load(context.Context) ([]catalogdomain.Product, error) { return s, nil }

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	catalog := catalogapp.NewService(log)
	require.NoError(t, catalog.Load(context.Background(), staticSource{
		{ID: "A1", Name: "Winter Tire", Price: 100, Category: catalogdomain.CategoryTires},
		{ID: "A2", Name: "Alloy Wheel", Price: 50, Category: catalogdomain.CategoryWheels},
	}))
	return NewHandler(log, cartapp.NewStore(log), catalog)
}

func do(t *testing.T, h *Handler, method, target, session string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResp {
	t.Helper()
	var resp cartResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetCartMintsSession(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, "GET", "/", "", nil)
	require.Equal(t, 200, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(SessionHeader))
	assert.JSONEq(t, `{"lines":[],"total":0,"itemCount":0}`, rec.Body.String())
}

func TestAddItemAndTotals(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A1","quantity":2}`))
	require.Equal(t, 200, rec.Code)

	rec = do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A2","quantity":3}`))
	resp := decodeCart(t, rec)

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 350.0, resp.Total)
	assert.Equal(t, 5, resp.ItemCount)
}

func TestAddItemValidation(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A1","quantity":0}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A9","quantity":1}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "POST", "/items", "sess", strings.NewReader(`not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItemClampsAtOne(t *testing.T) {
	h := newTestHandler(t)

	do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A1","quantity":1}`))
	rec := do(t, h, "PATCH", "/items/A1", "sess", strings.NewReader(`{"delta":-5}`))

	resp := decodeCart(t, rec)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].Quantity)
}

func TestRemoveItemAndClear(t *testing.T) {
	h := newTestHandler(t)

	do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A1","quantity":1}`))
	do(t, h, "POST", "/items", "sess", strings.NewReader(`{"product_id":"A2","quantity":1}`))

	rec := do(t, h, "DELETE", "/items/A1", "sess", nil)
	resp := decodeCart(t, rec)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "A2", resp.Lines[0].ID)

	rec = do(t, h, "DELETE", "/", "sess", nil)
	assert.Equal(t, 0, decodeCart(t, rec).ItemCount)
}

func TestSessionsAreIsolated(t *testing.T) {
	h := newTestHandler(t)

	do(t, h, "POST", "/items", "alpha", strings.NewReader(`{"product_id":"A1","quantity":2}`))

	rec := do(t, h, "GET", "/", "beta", nil)
	assert.Equal(t, 0, decodeCart(t, rec).ItemCount)
}
