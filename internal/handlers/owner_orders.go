package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/models"
)

// ListOrders shows the orders of one of the owner's restaurants. PENDING
// orders carry a confirm action; confirming is not time-boxed.
func (h *OwnerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("owner_orders.html")
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
		orders, err := h.API.GetOrdersByRestaurant(r.Context(), restaurantID)
		if err != nil {
			data["Error"] = "Failed to fetch orders."
		} else {
			data["Orders"] = orders
		}
	}
	tmpl.Execute(w, data)
}

// ConfirmOrder moves a PENDING order to CONFIRMED. The redirect re-reads
// the list from the order service rather than patching it locally.
func (h *OwnerHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(r.FormValue("order_id"))
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid order.")
		http.Redirect(w, r, "/owner/orders", http.StatusSeeOther)
		return
	}
	back := "/owner/orders"
	if restaurantID, err := strconv.Atoi(r.FormValue("restaurant_id")); err == nil {
		back += "?restaurant=" + strconv.Itoa(restaurantID)
	}

	if err := h.API.UpdateOrderStatus(r.Context(), orderID, models.StatusConfirmed); err != nil {
		slog.Error("Order confirm failed", "order_id", orderID, "error", err)
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to update order status."))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Order confirmed!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
