package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/models"
)

// CheckoutHandler drives the menu-to-order flow for one restaurant: pick
// quantities, push lines into the remote cart, choose an address, place
// the order. All cart and address state is re-read from the services on
// every render; nothing is merged locally.
type CheckoutHandler struct {
	API       *foodapi.Client
	Templates *TemplateCache
	Sessions  *SessionManager
}

// CartLanding lets the user pick a restaurant to order from.
func (h *CheckoutHandler) CartLanding(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("cart.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Flashes": h.Sessions.PopFlashes(w, r),
	}
	restaurants, err := h.API.GetAllRestaurants(r.Context())
	if err != nil {
		data["Error"] = "Failed to fetch restaurants"
	} else {
		data["Restaurants"] = restaurants
	}
	tmpl.Execute(w, data)
}

// Checkout renders the menu plus the authoritative cart for this
// (restaurant, user) pair. The cart fetch is chained after the menu fetch;
// the desired quantity for each item starts from its existing cart line,
// else zero.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)
	restaurantID, err := strconv.Atoi(r.PathValue("restaurantID"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("checkout.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"RestaurantID": restaurantID,
		"CsrfField":    csrf.TemplateField(r),
		"Flashes":      h.Sessions.PopFlashes(w, r),
	}

	items, err := h.API.GetFoodItems(r.Context(), restaurantID)
	if err != nil {
		data["Error"] = "Failed to fetch food items."
		tmpl.Execute(w, data)
		return
	}

	lines, err := h.API.GetCart(r.Context(), restaurantID, user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch cart items."
		tmpl.Execute(w, data)
		return
	}

	quantities := make(map[int]int, len(items))
	for _, item := range items {
		quantities[item.ID] = 0
	}
	for _, line := range lines {
		quantities[line.FoodItemID] = line.Quantity
	}

	var total float64
	for _, line := range lines {
		total += line.LineTotal()
	}

	data["Items"] = items
	data["Quantities"] = quantities
	data["CartLines"] = lines
	data["Total"] = total

	// Addresses load with the page; failure here only disables selection.
	addresses, err := h.API.GetAddresses(r.Context(), user.ID)
	if err != nil {
		data["AddressError"] = "Failed to fetch addresses."
	} else {
		data["Addresses"] = addresses
	}
	if selected, err := strconv.Atoi(r.URL.Query().Get("address")); err == nil {
		data["SelectedAddressID"] = selected
	}

	tmpl.Execute(w, data)
}

func (h *CheckoutHandler) checkoutPath(restaurantID int) string {
	return fmt.Sprintf("/checkout/%d", restaurantID)
}

// AddToCart submits the desired quantity for one food item and lets the
// follow-up render re-read the cart from the service. A zero quantity is
// rejected locally, before any request goes out.
func (h *CheckoutHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)
	restaurantID, err := strconv.Atoi(r.PathValue("restaurantID"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	back := h.checkoutPath(restaurantID)

	foodItemID, err := strconv.Atoi(r.FormValue("food_item_id"))
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid food item.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid food item.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity <= 0 {
		h.Sessions.Flash(w, r, "error", "Quantity must be greater than 0")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	err = h.API.AddCartLine(r.Context(), foodapi.AddCartRequest{
		UserID:       user.ID,
		RestaurantID: restaurantID,
		FoodItemID:   foodItemID,
		Quantity:     quantity,
		Price:        price,
	})
	if err != nil {
		slog.Error("Add to cart failed", "user_id", user.ID, "food_item_id", foodItemID, "error", err)
		h.Sessions.Flash(w, r, "error", "Failed to add item to cart.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Added to cart successfully!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// RemoveFromCart deletes one cart line by id. On failure the line stays;
// the next render still shows it because the service still has it.
func (h *CheckoutHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(r.PathValue("restaurantID"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	back := h.checkoutPath(restaurantID)

	cartID, err := strconv.Atoi(r.FormValue("cart_id"))
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid cart line.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if err := h.API.DeleteCartLine(r.Context(), cartID); err != nil {
		slog.Error("Remove from cart failed", "cart_id", cartID, "error", err)
		h.Sessions.Flash(w, r, "error", "Failed to remove item from cart.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, back, http.StatusSeeOther)
}

// AddAddress creates a delivery address, then re-reads the address list
// and auto-selects the new entry only if the service reports it back.
func (h *CheckoutHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)
	restaurantID, err := strconv.Atoi(r.PathValue("restaurantID"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	back := h.checkoutPath(restaurantID)

	street := r.FormValue("street")
	city := r.FormValue("city")
	state := r.FormValue("state")
	pinCode := r.FormValue("pinCode")

	// Validation
	errors := make(map[string]string)
	if street == "" {
		errors["street"] = "Street is required"
	}
	if city == "" {
		errors["city"] = "City is required"
	}
	if state == "" {
		errors["state"] = "State is required"
	}
	if msg := validatePinCode(pinCode); msg != "" {
		errors["pinCode"] = msg
	}
	if len(errors) > 0 {
		for _, msg := range errors {
			h.Sessions.Flash(w, r, "error", msg)
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	created, err := h.API.AddAddress(r.Context(), models.Address{
		UserID:  user.ID,
		Street:  street,
		City:    city,
		State:   state,
		PinCode: pinCode,
	})
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Failed to add address. Please try again later.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	// Full re-fetch rather than an optimistic append; select the new
	// address only when it is matched back by id.
	addresses, err := h.API.GetAddresses(r.Context(), user.ID)
	if err == nil {
		for _, addr := range addresses {
			if addr.AddressID == created.AddressID {
				http.Redirect(w, r, fmt.Sprintf("%s?address=%d", back, created.AddressID), http.StatusSeeOther)
				return
			}
		}
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// PlaceOrder submits the order for everything currently in the cart. The
// cart lines are read from the service at submission time; the total is
// the sum of price times quantity over exactly those lines.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)
	restaurantID, err := strconv.Atoi(r.PathValue("restaurantID"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	back := h.checkoutPath(restaurantID)

	addressID, err := strconv.Atoi(r.FormValue("address_id"))
	if err != nil || addressID <= 0 {
		h.Sessions.Flash(w, r, "error", "Please select or add an address.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	lines, err := h.API.GetCart(r.Context(), restaurantID, user.ID)
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Failed to fetch cart items.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if len(lines) == 0 {
		h.Sessions.Flash(w, r, "error", "Your cart is empty.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	var totalAmount float64
	cartIDs := make([]int, 0, len(lines))
	for _, line := range lines {
		totalAmount += line.LineTotal()
		cartIDs = append(cartIDs, line.ID)
	}

	err = h.API.CreateOrder(r.Context(), foodapi.CreateOrderRequest{
		UserID:       user.ID,
		RestaurantID: restaurantID,
		AddressID:    addressID,
		CartIDs:      cartIDs,
		TotalAmount:  totalAmount,
		OrderStatus:  models.StatusPending,
	})
	if err != nil {
		// Cart lines are left as-is; the user can retry or prune them.
		slog.Error("Order creation failed", "user_id", user.ID, "restaurant_id", restaurantID, "error", err)
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to place order."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	slog.Info("Order placed", "user_id", user.ID, "restaurant_id", restaurantID, "total", totalAmount)
	h.Sessions.Flash(w, r, "success", "Order placed successfully!")
	http.Redirect(w, r, "/dashboard/user", http.StatusSeeOther)
}
