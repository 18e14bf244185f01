package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/models"
)

// OrderHandler shows a user's orders and the time-boxed cancel action.
// Now is injectable so the cancel-window boundary is testable; nil means
// wall clock.
type OrderHandler struct {
	API       *foodapi.Client
	Templates *TemplateCache
	Sessions  *SessionManager
	Now       func() time.Time
}

func (h *OrderHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// orderView decorates an order with its cancel-window state at render
// time. Deadline feeds the shared countdown ticker in the browser.
type orderView struct {
	models.Order
	Cancelable bool
	Remaining  int
	Deadline   string
}

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	tmpl := h.Templates.Get("my_orders.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   h.Sessions.PopFlashes(w, r),
	}

	orders, err := h.API.GetOrdersByUser(r.Context(), user.ID)
	if err != nil {
		data["Error"] = "Failed to fetch orders."
		tmpl.Execute(w, data)
		return
	}

	now := h.now()
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView{
			Order:      order,
			Cancelable: order.Cancelable(now),
			Remaining:  order.CancelRemaining(now),
			Deadline:   order.CreatedAt.Add(models.CancelWindow).Format(time.RFC3339),
		})
	}
	data["Orders"] = views
	tmpl.Execute(w, data)
}

// Cancel requests a PENDING -> CANCELLED transition. The window is
// re-checked here before the request goes out, but the boundary is
// advisory: the order service remains the authority on whether the
// transition is still allowed.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Sessions.Current(r)

	orderID, err := strconv.Atoi(r.FormValue("order_id"))
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid order.")
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	orders, err := h.API.GetOrdersByUser(r.Context(), user.ID)
	if err != nil {
		h.Sessions.Flash(w, r, "error", "Failed to fetch orders.")
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	var target *models.Order
	for i := range orders {
		if orders[i].ID == orderID {
			target = &orders[i]
			break
		}
	}
	if target == nil {
		h.Sessions.Flash(w, r, "error", "Order not found.")
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	if !target.Cancelable(h.now()) {
		h.Sessions.Flash(w, r, "error", "This order can no longer be cancelled.")
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	if err := h.API.UpdateOrderStatus(r.Context(), orderID, models.StatusCancelled); err != nil {
		slog.Error("Order cancel failed", "order_id", orderID, "error", err)
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to cancel order."))
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	// The redirect re-fetches the list, so the status shown afterwards is
	// the service's, not a local mutation.
	h.Sessions.Flash(w, r, "success", "Order cancelled.")
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
