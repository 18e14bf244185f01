package foodapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foodgram/storefront/internal/models"
)

type CreateOrderRequest struct {
	UserID       int     `json:"userId"`
	RestaurantID int     `json:"restaurantId"`
	AddressID    int     `json:"addressId"`
	CartIDs      []int   `json:"cartIds"`
	TotalAmount  float64 `json:"totalAmount"`
	OrderStatus  string  `json:"orderStatus"`
}

type updateStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) error {
	return c.sendJSON(ctx, http.MethodPost, c.urls.Order+"/order/create", req, nil)
}

func (c *Client) GetOrdersByRestaurant(ctx context.Context, restaurantID int) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, fmt.Sprintf("%s/order/restaurant/%d", c.urls.Order, restaurantID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, fmt.Sprintf("%s/order/user/%d", c.urls.Order, userID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus requests a status transition. The order service owns
// the lifecycle; a rejected transition comes back as an APIError.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	body := updateStatusRequest{OrderStatus: status}
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("%s/order/updateStatus/%d", c.urls.Order, orderID), body, nil)
}
