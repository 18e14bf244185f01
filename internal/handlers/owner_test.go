package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgram/storefront/internal/models"
)

func newOwnerHandler(t *testing.T, backend http.HandlerFunc) (*OwnerHandler, *requestLog, *http.Cookie) {
	t.Helper()
	api, log := newFakeBackend(t, backend)
	sessions := newTestSessions()
	cookie := loginAs(t, sessions, &models.User{ID: 4, Role: models.RoleOwner, Name: "Ravi"})
	h := &OwnerHandler{
		API:      api,
		Sessions: sessions,
		Templates: stubTemplates(t, map[string]string{
			"owner_orders.html": `{{range .Orders}}{{.ID}}:{{.OrderStatus}};{{end}}`,
		}),
	}
	return h, log, cookie
}

func TestCreateCategoryNumericNameNeverCallsBackend(t *testing.T) {
	h, log, cookie := newOwnerHandler(t, nil)

	r := postForm("/owner/categories", cookie, url.Values{
		"restaurant_id": {"2"},
		"name":          {"123"},
	})
	w := httptest.NewRecorder()
	h.CreateCategory(w, r)

	assert.Zero(t, log.count(), "invalid names are rejected before any request")
	assert.Equal(t, "/owner/categories?restaurant=2", w.Header().Get("Location"))
}

func TestCreateCategorySubmitsValidName(t *testing.T) {
	h, log, cookie := newOwnerHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	r := postForm("/owner/categories", cookie, url.Values{
		"restaurant_id": {"2"},
		"name":          {"South Indian"},
	})
	w := httptest.NewRecorder()
	h.CreateCategory(w, r)

	requests := log.all()
	require.Len(t, requests, 1)
	assert.Equal(t, "/category/add", requests[0].Path)
	assert.Equal(t, "/owner/categories?restaurant=2", w.Header().Get("Location"))
}

func TestUpdateCategoryShortNameNeverCallsBackend(t *testing.T) {
	h, log, cookie := newOwnerHandler(t, nil)

	r := postForm("/owner/categories/update", cookie, url.Values{
		"id":            {"8"},
		"restaurant_id": {"2"},
		"name":          {"ab"},
	})
	w := httptest.NewRecorder()
	h.UpdateCategory(w, r)

	assert.Zero(t, log.count())
}

func TestConfirmOrderSendsConfirmedStatus(t *testing.T) {
	h, log, cookie := newOwnerHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := postForm("/owner/orders/confirm", cookie, url.Values{
		"order_id":      {"7"},
		"restaurant_id": {"2"},
	})
	w := httptest.NewRecorder()
	h.ConfirmOrder(w, r)

	requests := log.all()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPut, requests[0].Method)
	assert.Equal(t, "/order/updateStatus/7", requests[0].Path)

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(requests[0].Body), &sent))
	assert.Equal(t, models.StatusConfirmed, sent["orderStatus"])

	assert.Equal(t, "/owner/orders?restaurant=2", w.Header().Get("Location"))
}

func TestListOrdersScopedToSelectedRestaurant(t *testing.T) {
	h, log, cookie := newOwnerHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/restaurant/get/4":
			json.NewEncoder(w).Encode([]models.Restaurant{{ID: 2, RestaurantName: "Dosa Hut"}})
		case "/order/restaurant/2":
			json.NewEncoder(w).Encode([]models.Order{{ID: 7, OrderStatus: models.StatusPending}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	r := httptest.NewRequest(http.MethodGet, "/owner/orders?restaurant=2", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	h.ListOrders(w, r)

	require.Equal(t, 2, log.count())
	assert.Contains(t, w.Body.String(), "7:PENDING;")
}

func TestListOrdersWithoutSelectionSkipsOrderFetch(t *testing.T) {
	h, log, cookie := newOwnerHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Restaurant{{ID: 2}})
	})

	r := httptest.NewRequest(http.MethodGet, "/owner/orders", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	h.ListOrders(w, r)

	assert.Equal(t, 1, log.count(), "only the restaurant list is fetched until one is picked")
}
