package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgram/storefront/internal/models"
)

func newAuthHandler(t *testing.T, backend http.HandlerFunc) (*AuthHandler, *requestLog) {
	t.Helper()
	api, log := newFakeBackend(t, backend)
	h := &AuthHandler{
		API:      api,
		Sessions: newTestSessions(),
		Templates: stubTemplates(t, map[string]string{
			"login.html":    `login`,
			"register.html": `register`,
		}),
	}
	return h, log
}

func TestLoginSuccessStartsSessionAndRedirectsByRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{models.RoleUser, "/dashboard/user"},
		{models.RoleOwner, "/dashboard/owner"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			h, _ := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(models.User{ID: 9, Name: "Asha", Role: tt.role})
			})

			r := postForm("/login", nil, url.Values{
				"email":    {"asha@gmail.com"},
				"password": {"secret"},
			})
			w := httptest.NewRecorder()
			h.LoginPost(w, r)

			assert.Equal(t, tt.want, w.Header().Get("Location"))
			require.NotEmpty(t, w.Result().Cookies(), "a session cookie must be issued")
		})
	}
}

func TestLoginSendsEncodedPassword(t *testing.T) {
	var seen map[string]string
	h, _ := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&seen)
		json.NewEncoder(w).Encode(models.User{ID: 9, Role: models.RoleUser})
	})

	r := postForm("/login", nil, url.Values{
		"email":    {"asha@gmail.com"},
		"password": {"secret"},
	})
	h.LoginPost(httptest.NewRecorder(), r)

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("secret")), seen["password"])
}

func TestLoginUnknownEmailFlashesMismatch(t *testing.T) {
	h, _ := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such user"})
	})

	r := postForm("/login", nil, url.Values{
		"email":    {"nobody@gmail.com"},
		"password": {"secret"},
	})
	w := httptest.NewRecorder()
	h.LoginPost(w, r)

	assert.Equal(t, "/login", w.Header().Get("Location"))

	// The only session written is the flash; no logged-in user.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	_, ok := h.Sessions.Current(req)
	assert.False(t, ok)
}

func TestLoginWrongPasswordFlashesMismatch(t *testing.T) {
	h, _ := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	r := postForm("/login", nil, url.Values{
		"email":    {"asha@gmail.com"},
		"password": {"wrong"},
	})
	w := httptest.NewRecorder()
	h.LoginPost(w, r)

	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginUnexpectedRoleIsRejected(t *testing.T) {
	h, _ := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.User{ID: 9, Role: "ADMIN"})
	})

	r := postForm("/login", nil, url.Values{
		"email":    {"asha@gmail.com"},
		"password": {"secret"},
	})
	w := httptest.NewRecorder()
	h.LoginPost(w, r)

	assert.Equal(t, "/login", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	_, ok := h.Sessions.Current(req)
	assert.False(t, ok)
}

func TestRegisterInvalidPhoneNeverCallsBackend(t *testing.T) {
	h, log := newAuthHandler(t, nil)

	r := postForm("/register", nil, url.Values{
		"name":            {"Asha Rao"},
		"email":           {"asha@gmail.com"},
		"phoneNo":         {"1234567890"},
		"password":        {"secret"},
		"confirmPassword": {"secret"},
	})
	w := httptest.NewRecorder()
	h.RegisterPost(w, r)

	assert.Zero(t, log.count())
	assert.Equal(t, "/register", w.Header().Get("Location"))
}

func TestRegisterPasswordMismatchNeverCallsBackend(t *testing.T) {
	h, log := newAuthHandler(t, nil)

	r := postForm("/register", nil, url.Values{
		"name":            {"Asha Rao"},
		"email":           {"asha@gmail.com"},
		"phoneNo":         {"9876543210"},
		"password":        {"secret"},
		"confirmPassword": {"different"},
	})
	w := httptest.NewRecorder()
	h.RegisterPost(w, r)

	assert.Zero(t, log.count())
	assert.Equal(t, "/register", w.Header().Get("Location"))
}

func TestRegisterSubmitsNormalizedName(t *testing.T) {
	var seen map[string]interface{}
	h, log := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&seen)
		w.WriteHeader(http.StatusCreated)
	})

	r := postForm("/register", nil, url.Values{
		"name":            {"  Asha   Rao "},
		"email":           {"asha@gmail.com"},
		"phoneNo":         {"9876543210"},
		"password":        {"secret"},
		"confirmPassword": {"secret"},
	})
	w := httptest.NewRecorder()
	h.RegisterPost(w, r)

	require.Equal(t, 1, log.count())
	assert.Equal(t, "/user/add", log.all()[0].Path)
	assert.Equal(t, "Asha Rao", seen["name"])
	assert.Equal(t, models.RoleUser, seen["role"])
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
