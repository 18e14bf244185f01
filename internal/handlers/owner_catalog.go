package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
)

// selectedRestaurant reads the ?restaurant= query used by the catalog
// views to scope themselves to one of the owner's restaurants.
func selectedRestaurant(r *http.Request) int {
	id, err := strconv.Atoi(r.URL.Query().Get("restaurant"))
	if err != nil || id < 1 {
		return 0
	}
	return id
}

func (h *OwnerHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("owner_categories.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   h.Sessions.PopFlashes(w, r),
	}

	restaurants, err := h.API.GetRestaurantsByOwner(r.Context(), user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch restaurants."
		tmpl.Execute(w, data)
		return
	}
	data["Restaurants"] = restaurants

	if restaurantID := selectedRestaurant(r); restaurantID > 0 {
		data["SelectedRestaurantID"] = restaurantID
		categories, err := h.API.GetCategories(r.Context(), restaurantID)
		if err != nil {
			data["Error"] = "Failed to fetch categories."
		} else {
			data["Categories"] = categories
		}
	}
	tmpl.Execute(w, data)
}

func (h *OwnerHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(r.FormValue("restaurant_id"))
	if err != nil || restaurantID < 1 {
		h.Sessions.Flash(w, r, "error", "Select a restaurant first.")
		http.Redirect(w, r, "/owner/categories", http.StatusSeeOther)
		return
	}
	back := "/owner/categories?restaurant=" + strconv.Itoa(restaurantID)

	name := r.FormValue("name")
	if msg := validateAlphaName(name, "Category"); msg != "" {
		h.Sessions.Flash(w, r, "error", msg)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if err := h.API.AddCategory(r.Context(), restaurantID, name); err != nil {
		slog.Error("Add category failed", "restaurant_id", restaurantID, "error", err)
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to add category."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Category added successfully!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (h *OwnerHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid category.")
		http.Redirect(w, r, "/owner/categories", http.StatusSeeOther)
		return
	}
	back := "/owner/categories"
	if restaurantID, err := strconv.Atoi(r.FormValue("restaurant_id")); err == nil {
		back += "?restaurant=" + strconv.Itoa(restaurantID)
	}

	name := r.FormValue("name")
	if msg := validateAlphaName(name, "Category"); msg != "" {
		h.Sessions.Flash(w, r, "error", msg)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if err := h.API.UpdateCategory(r.Context(), categoryID, name); err != nil {
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to update category."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Category updated!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (h *OwnerHandler) ListFoodItems(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("owner_fooditems.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   h.Sessions.PopFlashes(w, r),
	}

	restaurants, err := h.API.GetRestaurantsByOwner(r.Context(), user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch restaurants."
		tmpl.Execute(w, data)
		return
	}
	data["Restaurants"] = restaurants

	if restaurantID := selectedRestaurant(r); restaurantID > 0 {
		data["SelectedRestaurantID"] = restaurantID
		items, err := h.API.GetFoodItems(r.Context(), restaurantID)
		if err != nil {
			data["Error"] = "Failed to fetch food items."
		} else {
			data["Items"] = items
		}
	}
	tmpl.Execute(w, data)
}

func (h *OwnerHandler) NewFoodItemForm(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("owner_fooditem_new.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   h.Sessions.PopFlashes(w, r),
	}

	restaurants, err := h.API.GetRestaurantsByOwner(r.Context(), user.ID)
	if err == nil {
		data["Restaurants"] = restaurants
	}
	if restaurantID := selectedRestaurant(r); restaurantID > 0 {
		data["SelectedRestaurantID"] = restaurantID
		if categories, err := h.API.GetCategories(r.Context(), restaurantID); err == nil {
			data["Categories"] = categories
		}
	}
	tmpl.Execute(w, data)
}

func (h *OwnerHandler) CreateFoodItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Sessions.Flash(w, r, "error", "File too large. Max 10MB.")
		http.Redirect(w, r, "/owner/fooditems/new", http.StatusSeeOther)
		return
	}

	restaurantID, err := strconv.Atoi(r.FormValue("restaurant_id"))
	if err != nil || restaurantID < 1 {
		h.Sessions.Flash(w, r, "error", "Select a restaurant first.")
		http.Redirect(w, r, "/owner/fooditems/new", http.StatusSeeOther)
		return
	}
	back := "/owner/fooditems/new?restaurant=" + strconv.Itoa(restaurantID)

	categoryID, err := strconv.Atoi(r.FormValue("category_id"))
	if err != nil || categoryID < 1 {
		h.Sessions.Flash(w, r, "error", "Select a category first.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	foodName := r.FormValue("foodName")
	description := r.FormValue("description")
	priceStr := r.FormValue("price")
	isAvailable := r.FormValue("isAvailable") != "false"

	// Validation
	errors := make(map[string]string)
	if msg := validateAlphaName(foodName, "Food"); msg != "" {
		errors["foodName"] = msg
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		errors["price"] = "Invalid price format."
	} else if price <= 0 {
		errors["price"] = "Price must be positive."
	}
	if len(errors) > 0 {
		for _, msg := range errors {
			h.Sessions.Flash(w, r, "error", msg)
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	image, err := formImage(r, "image")
	if err != nil {
		h.Sessions.Flash(w, r, "error", err.Error())
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	err = h.API.AddFoodItem(r.Context(), foodapi.AddFoodItemRequest{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		FoodName:     foodName,
		Description:  description,
		Price:        price,
		IsAvailable:  isAvailable,
		Image:        image,
	})
	if err != nil {
		slog.Error("Add food item failed", "restaurant_id", restaurantID, "error", err)
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to add food item."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Food item added successfully!")
	http.Redirect(w, r, "/owner/fooditems?restaurant="+strconv.Itoa(restaurantID), http.StatusSeeOther)
}

func (h *OwnerHandler) UpdateFoodItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid food item.")
		http.Redirect(w, r, "/owner/fooditems", http.StatusSeeOther)
		return
	}
	back := "/owner/fooditems"
	if restaurantID, err := strconv.Atoi(r.FormValue("restaurant_id")); err == nil {
		back += "?restaurant=" + strconv.Itoa(restaurantID)
	}

	foodName := r.FormValue("foodName")
	if msg := validateAlphaName(foodName, "Food"); msg != "" {
		h.Sessions.Flash(w, r, "error", msg)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price <= 0 {
		h.Sessions.Flash(w, r, "error", "Price must be positive.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	err = h.API.UpdateFoodItem(r.Context(), itemID, foodapi.UpdateFoodItemRequest{
		FoodName:    foodName,
		Description: r.FormValue("description"),
		Price:       price,
		IsAvailable: r.FormValue("isAvailable") != "false",
	})
	if err != nil {
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to update food item."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Food item updated!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
