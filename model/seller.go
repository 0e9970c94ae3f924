package model

import "time"

// Seller registrations start out pending until reviewed.
type Seller struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	ShopName  string    `json:"shop_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterSellerInput struct {
	Username string `json:"username" validate:"required,min=3"`
	ShopName string `json:"shopName" validate:"required"`
}

// SubAccount is an operator login under the seller. Independent of orders
// and tickets.
type SubAccount struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Status   string `json:"status"`
}

type CreateSubAccountInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}
