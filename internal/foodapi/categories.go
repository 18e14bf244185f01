package foodapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foodgram/storefront/internal/models"
)

type categoryRequest struct {
	RestaurantID int    `json:"restaurantId,omitempty"`
	Name         string `json:"name"`
}

func (c *Client) GetCategories(ctx context.Context, restaurantID int) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, fmt.Sprintf("%s/category/getAll/%d", c.urls.Category, restaurantID), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) AddCategory(ctx context.Context, restaurantID int, name string) error {
	body := categoryRequest{RestaurantID: restaurantID, Name: name}
	return c.sendJSON(ctx, http.MethodPost, c.urls.Category+"/category/add", body, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id int, name string) error {
	body := categoryRequest{Name: name}
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("%s/category/update/%d", c.urls.Category, id), body, nil)
}
