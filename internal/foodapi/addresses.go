package foodapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/foodgram/storefront/internal/models"
)

func (c *Client) GetAddresses(ctx context.Context, userID int) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.getJSON(ctx, fmt.Sprintf("%s/address/get/%d", c.urls.Address, userID), &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress creates an address and returns the server's record for it,
// which carries the assigned addressId.
func (c *Client) AddAddress(ctx context.Context, addr models.Address) (*models.Address, error) {
	var created models.Address
	if err := c.sendJSON(ctx, http.MethodPost, c.urls.Address+"/address/add", addr, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
