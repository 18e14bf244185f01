package foodapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/foodgram/storefront/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phoneNo"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates against the user service. The password travels
// base64-encoded, which is the encoding the service expects (it is not a
// security measure).
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := loginRequest{
		Email:    email,
		Password: base64.StdEncoding.EncodeToString([]byte(password)),
	}
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPost, c.urls.User+"/user/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	req.Password = base64.StdEncoding.EncodeToString([]byte(req.Password))
	return c.sendJSON(ctx, http.MethodPost, c.urls.User+"/user/add", req, nil)
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, fmt.Sprintf("%s/user/get/%d", c.urls.User, id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SendContactMessage forwards a contact-us message through the user
// service. The service takes the fields as query parameters with an empty
// body.
func (c *Client) SendContactMessage(ctx context.Context, fromEmail, subject, message string) error {
	params := url.Values{}
	params.Set("from", fromEmail)
	params.Set("subject", subject)
	params.Set("message", message)
	return c.sendJSON(ctx, http.MethodPost, c.urls.User+"/user/send?"+params.Encode(), nil, nil)
}
