package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
)

type OwnerHandler struct {
	API       *foodapi.Client
	Templates *TemplateCache
	Sessions  *SessionManager
}

func (h *OwnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("owner_dashboard.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"User":    user,
		"Flashes": h.Sessions.PopFlashes(w, r),
	}
	restaurants, err := h.API.GetRestaurantsByOwner(r.Context(), user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch restaurants."
	} else {
		data["Restaurants"] = restaurants
	}
	tmpl.Execute(w, data)
}

func (h *OwnerHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("owner_restaurants.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Flashes": h.Sessions.PopFlashes(w, r),
	}
	restaurants, err := h.API.GetRestaurantsByOwner(r.Context(), user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch restaurants."
	} else {
		data["Restaurants"] = restaurants
	}
	tmpl.Execute(w, data)
}

func (h *OwnerHandler) NewRestaurantForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("owner_restaurant_new.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   h.Sessions.PopFlashes(w, r),
	}
	tmpl.Execute(w, data)
}

func (h *OwnerHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	// 10MB cap, same as any other image upload here.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Sessions.Flash(w, r, "error", "File too large. Max 10MB.")
		http.Redirect(w, r, "/owner/restaurants/new", http.StatusSeeOther)
		return
	}

	name := r.FormValue("restaurantName")
	address := r.FormValue("address")
	contactNumber := r.FormValue("contactNumber")
	description := r.FormValue("description")

	// Validation
	errors := make(map[string]string)
	if msg := validateAlphaName(name, "Restaurant"); msg != "" {
		errors["restaurantName"] = msg
	}
	if address == "" {
		errors["address"] = "Address is required."
	}
	if msg := validatePhone(contactNumber); msg != "" {
		errors["contactNumber"] = msg
	}
	if len(errors) > 0 {
		for _, msg := range errors {
			h.Sessions.Flash(w, r, "error", msg)
		}
		http.Redirect(w, r, "/owner/restaurants/new", http.StatusSeeOther)
		return
	}

	image, err := formImage(r, "image")
	if err != nil {
		h.Sessions.Flash(w, r, "error", err.Error())
		http.Redirect(w, r, "/owner/restaurants/new", http.StatusSeeOther)
		return
	}

	err = h.API.AddRestaurant(r.Context(), foodapi.AddRestaurantRequest{
		UserID:         user.ID,
		RestaurantName: name,
		Address:        address,
		ContactNumber:  contactNumber,
		Description:    description,
		Image:          image,
	})
	if err != nil {
		slog.Error("Add restaurant failed", "user_id", user.ID, "error", err)
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to add restaurant."))
		http.Redirect(w, r, "/owner/restaurants/new", http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Restaurant added successfully!")
	http.Redirect(w, r, "/owner/restaurants", http.StatusSeeOther)
}
