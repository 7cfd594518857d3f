package formrelay

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forsage-shop/storefront/internal/checkout/application"
)

func TestSendPostsFormFields(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		got = map[string]string{
			"_subject":     r.PostFormValue("_subject"),
			"fullName":     r.PostFormValue("fullName"),
			"phone":        r.PostFormValue("phone"),
			"address":      r.PostFormValue("address"),
			"orderSummary": r.PostFormValue("orderSummary"),
		}
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(slog.New(slog.DiscardHandler), srv.URL, "NEW ORDER from storefront")
	err := c.Send(context.Background(), application.Submission{
		FullName:     "Ivan Ivanov",
		Phone:        "+380991112233",
		Address:      "Kyiv, NP #12",
		OrderSummary: "Sum: 200 UAH.\nOrder contents:\nWinter Tire (ID: A1) - 2pcs. x 100UAH",
	})
	require.NoError(t, err)

	assert.Equal(t, "NEW ORDER from storefront", got["_subject"])
	assert.Equal(t, "Ivan Ivanov", got["fullName"])
	assert.Contains(t, got["orderSummary"], "Order contents:")
}

func TestSendRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(slog.New(slog.DiscardHandler), srv.URL, "subject")
	err := c.Send(context.Background(), application.Submission{})
	assert.ErrorContains(t, err, "422")
}

func TestSendUnreachableEndpoint(t *testing.T) {
	c := NewClient(slog.New(slog.DiscardHandler), "http://127.0.0.1:1", "subject")
	err := c.Send(context.Background(), application.Submission{})
	assert.Error(t, err)
}
