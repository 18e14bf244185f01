package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodgram/storefront/internal/models"
)

func protectedProbe() (http.HandlerFunc, *bool) {
	reached := false
	return func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}, &reached
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	sessions := newTestSessions()
	next, reached := protectedProbe()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	sessions.RequireLogin(next)(w, r)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	sessions := newTestSessions()
	cookie := loginAs(t, sessions, &models.User{ID: 1, Role: models.RoleUser, Name: "Asha"})
	next, reached := protectedProbe()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.AddCookie(cookie)
	sessions.RequireLogin(next)(w, r)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRedirectsMismatchToOwnHome(t *testing.T) {
	tests := []struct {
		name         string
		sessionRole  string
		requiredRole string
		wantLocation string
	}{
		{"owner on user-only path", models.RoleOwner, models.RoleUser, "/dashboard/owner"},
		{"user on owner-only path", models.RoleUser, models.RoleOwner, "/dashboard/user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newTestSessions()
			cookie := loginAs(t, sessions, &models.User{ID: 2, Role: tt.sessionRole})
			next, reached := protectedProbe()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/some/protected", nil)
			r.AddCookie(cookie)
			sessions.RequireRole(tt.requiredRole, next)(w, r)

			assert.False(t, *reached)
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestRequireRoleRedirectsAnonymousToLogin(t *testing.T) {
	sessions := newTestSessions()
	next, reached := protectedProbe()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard/owner", nil)
	sessions.RequireRole(models.RoleOwner, next)(w, r)

	assert.False(t, *reached)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireRolePassesMatchingRole(t *testing.T) {
	sessions := newTestSessions()
	cookie := loginAs(t, sessions, &models.User{ID: 3, Role: models.RoleOwner})
	next, reached := protectedProbe()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard/owner", nil)
	r.AddCookie(cookie)
	sessions.RequireRole(models.RoleOwner, next)(w, r)

	assert.True(t, *reached)
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/dashboard/owner", DashboardPath(models.RoleOwner))
	assert.Equal(t, "/dashboard/user", DashboardPath(models.RoleUser))
	assert.Equal(t, "/", DashboardPath("ADMIN"))
}
