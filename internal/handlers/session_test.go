package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgram/storefront/internal/models"
)

func TestSessionLoginRoundtrip(t *testing.T) {
	sessions := newTestSessions()
	cookie := loginAs(t, sessions, &models.User{ID: 5, Role: models.RoleUser, Name: "Asha", Email: "asha@gmail.com"})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)

	user, ok := sessions.Current(r)
	require.True(t, ok)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "asha@gmail.com", user.Email)
}

func TestSessionAbsentReadsAsNone(t *testing.T) {
	sessions := newTestSessions()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := sessions.Current(r)
	assert.False(t, ok)
}

func TestSessionMalformedCookieReadsAsNone(t *testing.T) {
	sessions := newTestSessions()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "not-a-real-session"})

	_, ok := sessions.Current(r)
	assert.False(t, ok)
}

func TestSessionLastLoginWins(t *testing.T) {
	sessions := newTestSessions()
	loginAs(t, sessions, &models.User{ID: 5, Role: models.RoleUser, Name: "Asha"})
	second := loginAs(t, sessions, &models.User{ID: 9, Role: models.RoleOwner, Name: "Ravi"})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(second)

	user, ok := sessions.Current(r)
	require.True(t, ok)
	assert.Equal(t, 9, user.ID)
	assert.Equal(t, models.RoleOwner, user.Role)
}

func TestSessionLogoutClears(t *testing.T) {
	sessions := newTestSessions()
	cookie := loginAs(t, sessions, &models.User{ID: 5, Role: models.RoleUser})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.AddCookie(cookie)
	require.NoError(t, sessions.Logout(w, r))

	// The replacement cookie is expired.
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, -1, cleared[0].MaxAge)
}
