package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foodgram/storefront/internal/models"
)

// DashboardPath maps a role to its home view.
func DashboardPath(role string) string {
	switch role {
	case models.RoleOwner:
		return "/dashboard/owner"
	case models.RoleUser:
		return "/dashboard/user"
	default:
		return "/"
	}
}

// RequireLogin gates a route behind any authenticated session. Anonymous
// requests are bounced to the login page with a one-time notice.
func (m *SessionManager) RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.Current(r); !ok {
			slog.Info("Unauthenticated request to protected path", "path", r.URL.Path)
			m.Flash(w, r, "error", "You must be logged in to access this page.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// RequireRole gates a route behind one specific role. No session redirects
// to login; the wrong role redirects to that role's own dashboard. The
// check is purely local, no backend is consulted.
func (m *SessionManager) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.Current(r)
		if !ok {
			m.Flash(w, r, "error", "You must be logged in to access this page.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if user.Role != role {
			slog.Info("Role mismatch on protected path", "path", r.URL.Path, "role", user.Role)
			http.Redirect(w, r, DashboardPath(user.Role), http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
