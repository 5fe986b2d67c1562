package order

import "time"

type CheckoutRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type CheckoutResponse struct {
	OrderID     uint    `json:"orderId"`
	Total       float64 `json:"total"`
	WhatsAppURL string  `json:"whatsappUrl"`
}

type OrderItemDTO struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderDTO struct {
	ID         uint           `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Phone      string         `json:"phone"`
	Address    *string        `json:"address"`
	Status     string         `json:"status"`
	TotalPrice float64        `json:"totalPrice"`
	Items      []OrderItemDTO `json:"items"`
	CreatedAt  time.Time      `json:"createdAt"`
}
