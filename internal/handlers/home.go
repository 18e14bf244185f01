package handlers

import (
	"net/http"
	"strconv"

	"github.com/foodgram/storefront/internal/foodapi"
)

type HomeHandler struct {
	API       *foodapi.Client
	Templates *TemplateCache
	Sessions  *SessionManager
}

// Index renders the public restaurant list. It is also the mux catch-all,
// so anything that matched no other route bounces back to home.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Flashes": h.Sessions.PopFlashes(w, r),
	}
	if user, ok := h.Sessions.Current(r); ok {
		data["User"] = user
	}

	restaurants, err := h.API.GetAllRestaurants(r.Context())
	if err != nil {
		data["Error"] = "Failed to fetch restaurants."
	} else {
		data["Restaurants"] = restaurants
	}
	tmpl.Execute(w, data)
}

// ViewMenu is the public, read-only menu for one restaurant.
func (h *HomeHandler) ViewMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(r.PathValue("restaurantID"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("menu.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"RestaurantID": restaurantID,
		"Flashes":      h.Sessions.PopFlashes(w, r),
	}

	items, err := h.API.GetFoodItems(r.Context(), restaurantID)
	if err != nil {
		data["Error"] = "Failed to fetch food items."
	} else {
		data["Items"] = items
		// The restaurant name rides along on each food item.
		if len(items) > 0 {
			data["RestaurantName"] = items[0].RestaurantName
		}
	}
	tmpl.Execute(w, data)
}
