package models

import (
	"time"
)

// Roles returned by the user service.
const (
	RoleUser  = "USER"
	RoleOwner = "OWNER"
)

// Order statuses owned by the order service.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// CancelWindow is how long after creation a PENDING order may still be
// cancelled by the user. The order service is the authority; this bound
// only drives what the client offers.
const CancelWindow = 30 * time.Second

type User struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PhoneNo       string  `json:"phoneNo"`
	Role          string  `json:"role"`
	WalletBalance float64 `json:"walletBalance"`
}

type Restaurant struct {
	ID             int    `json:"id"`
	UserID         int    `json:"userId"`
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	ContactNumber  string `json:"contactNumber"`
	Description    string `json:"description"`
	ImageData      string `json:"imageData,omitempty"` // base64 JPEG
}

type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	RestaurantID int    `json:"restaurantId"`
}

type FoodItem struct {
	ID             int     `json:"id"`
	FoodName       string  `json:"foodName"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	IsAvailable    bool    `json:"isAvailable"`
	CategoryID     int     `json:"categoryId"`
	CategoryName   string  `json:"categoryName"`
	RestaurantID   int     `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName,omitempty"`
	ImageData      string  `json:"imageData,omitempty"`
}

// CartLine is one server-side cart entry for a (user, restaurant) pair.
type CartLine struct {
	ID           int     `json:"id"`
	FoodItemID   int     `json:"foodItemId"`
	FoodItemName string  `json:"foodItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

func (c CartLine) LineTotal() float64 {
	return c.Price * float64(c.Quantity)
}

type Address struct {
	AddressID int    `json:"addressId"`
	UserID    int    `json:"userId"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
}

type OrderDetail struct {
	FoodItemID   int     `json:"foodItemId"`
	FoodItemName string  `json:"foodItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type Order struct {
	ID           int           `json:"id"`
	UserID       int           `json:"userId"`
	RestaurantID int           `json:"restaurantId"`
	AddressID    int           `json:"addressId"`
	OrderDetails []OrderDetail `json:"orderDetails"`
	TotalAmount  float64       `json:"totalAmount"`
	OrderStatus  string        `json:"orderStatus"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Cancelable reports whether the user may still cancel this order at the
// given instant: the order is PENDING and strictly inside the cancel
// window. At exactly CancelWindow elapsed the order is no longer
// cancelable.
func (o Order) Cancelable(now time.Time) bool {
	return o.OrderStatus == StatusPending && now.Sub(o.CreatedAt) < CancelWindow
}

// CancelRemaining returns the whole seconds left in the cancel window,
// or 0 once the window has closed.
func (o Order) CancelRemaining(now time.Time) int {
	if !o.Cancelable(now) {
		return 0
	}
	left := CancelWindow - now.Sub(o.CreatedAt)
	return int(left.Seconds())
}
