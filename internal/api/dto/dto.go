package dto

import (
	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/shopspring/decimal"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity é ponteiro para aceitar zero (zero remove a linha).
type UpdateCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// Dados do cartão são simulados e descartados; nenhum dado real é cobrado.
type CheckoutRequest struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type ManualOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type ManualOrderRequest struct {
	CustomerName  string                   `json:"customer_name" binding:"required"`
	CustomerEmail string                   `json:"customer_email" binding:"required"`
	Status        string                   `json:"status" binding:"required"`
	Items         []ManualOrderItemRequest `json:"items" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type GrantAdminRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	ImageURL string          `json:"image_url"`
	Price    decimal.Decimal `json:"price"`
	Stock    uint            `json:"stock"`
	Active   bool            `json:"active"`
}

type CartResponse struct {
	Items      []model.CartLine `json:"items"`
	TotalItems int              `json:"total_items"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

func NewCartResponse(cart *model.Cart) CartResponse {
	items := cart.Lines
	if items == nil {
		items = []model.CartLine{}
	}
	return CartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}
