package handlers

import (
	"net/http"
)

// UserDashboard shows the logged-in user's profile as served by the user
// service, alongside links into the ordering flow.
func (h *OrderHandler) UserDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("user_dashboard.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"User":    user,
		"Flashes": h.Sessions.PopFlashes(w, r),
	}

	profile, err := h.API.GetUser(r.Context(), user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch profile."
	} else {
		data["Profile"] = profile
	}
	tmpl.Execute(w, data)
}
