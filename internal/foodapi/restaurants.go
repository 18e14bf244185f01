package foodapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/foodgram/storefront/internal/models"
)

type AddRestaurantRequest struct {
	UserID         int
	RestaurantName string
	Address        string
	ContactNumber  string
	Description    string
	Image          []byte // optional JPEG
}

func (c *Client) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.getJSON(ctx, c.urls.Restaurant+"/restaurant/getAll", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) GetRestaurantsByOwner(ctx context.Context, ownerID int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.getJSON(ctx, fmt.Sprintf("%s/restaurant/get/%d", c.urls.Restaurant, ownerID), &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) AddRestaurant(ctx context.Context, req AddRestaurantRequest) error {
	fields := map[string]string{
		"userId":         strconv.Itoa(req.UserID),
		"restaurantName": req.RestaurantName,
		"address":        req.Address,
		"contactNumber":  req.ContactNumber,
		"description":    req.Description,
	}
	return c.sendMultipart(ctx, c.urls.Restaurant+"/restaurant/add", fields, req.Image)
}
