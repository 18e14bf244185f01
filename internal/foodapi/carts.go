package foodapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/foodgram/storefront/internal/models"
)

type AddCartRequest struct {
	UserID       int     `json:"userId"`
	RestaurantID int     `json:"restaurantId"`
	FoodItemID   int     `json:"foodItemId"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// GetCart returns the authoritative cart line list for one
// (restaurant, user) pair. Callers re-sync from this after every write
// instead of merging locally.
func (c *Client) GetCart(ctx context.Context, restaurantID, userID int) ([]models.CartLine, error) {
	params := url.Values{}
	params.Set("restaurantId", strconv.Itoa(restaurantID))
	params.Set("userId", strconv.Itoa(userID))

	var lines []models.CartLine
	if err := c.getJSON(ctx, c.urls.Cart+"/cart/getAll?"+params.Encode(), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddCartLine submits the desired quantity for one food item. Whether a
// repeated add overwrites or accumulates is the cart service's call; the
// client only ever reconciles via GetCart afterwards.
func (c *Client) AddCartLine(ctx context.Context, req AddCartRequest) error {
	return c.sendJSON(ctx, http.MethodPost, c.urls.Cart+"/cart/addCart", req, nil)
}

func (c *Client) DeleteCartLine(ctx context.Context, id int) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/cart/delete/%d", c.urls.Cart, id), nil, nil)
}
