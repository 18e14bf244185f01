package foodapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/foodgram/storefront/internal/models"
)

type AddFoodItemRequest struct {
	RestaurantID int
	CategoryID   int
	FoodName     string
	Description  string
	Price        float64
	IsAvailable  bool
	Image        []byte // optional JPEG
}

type UpdateFoodItemRequest struct {
	FoodName    string  `json:"foodName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

func (c *Client) GetFoodItems(ctx context.Context, restaurantID int) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := c.getJSON(ctx, fmt.Sprintf("%s/foodItem/getAll/%d", c.urls.FoodItem, restaurantID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddFoodItem(ctx context.Context, req AddFoodItemRequest) error {
	fields := map[string]string{
		"restaurantId": strconv.Itoa(req.RestaurantID),
		"categoryId":   strconv.Itoa(req.CategoryID),
		"foodName":     req.FoodName,
		"description":  req.Description,
		"price":        strconv.FormatFloat(req.Price, 'f', 2, 64),
		"isAvailable":  strconv.FormatBool(req.IsAvailable),
	}
	return c.sendMultipart(ctx, c.urls.FoodItem+"/foodItem/addFoodItem", fields, req.Image)
}

func (c *Client) UpdateFoodItem(ctx context.Context, id int, req UpdateFoodItemRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("%s/foodItem/update/%d", c.urls.FoodItem, id), req, nil)
}
