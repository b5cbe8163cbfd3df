package model

import (
	"github.com/shopspring/decimal"
)

type OrderStatus string

// Fluxo sugerido: pago_simulado -> preparando -> enviado -> finalizado.
// A transição é dirigida pela equipe, não é validada como máquina de estados.
const (
	OrderStatusPagoSimulado OrderStatus = "pago_simulado"
	OrderStatusPreparando   OrderStatus = "preparando"
	OrderStatusEnviado      OrderStatus = "enviado"
	OrderStatusFinalizado   OrderStatus = "finalizado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPagoSimulado, OrderStatusPreparando, OrderStatusEnviado, OrderStatusFinalizado:
		return true
	}
	return false
}

// Order é o pedido gravado no checkout. Items e Total são imutáveis depois
// de criados; só Status e Archived mudam, e só por ação administrativa.
// UserID nulo marca pedido manual criado pela equipe.
type Order struct {
	OrderID       string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID        *string         `gorm:"type:uuid;index" json:"user_id"`
	CustomerName  string          `gorm:"not null;type:varchar(100)" json:"customer_name"`
	CustomerEmail string          `gorm:"not null;type:varchar(100)" json:"customer_email"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total"`
	Status        OrderStatus     `gorm:"not null;type:varchar(20)" json:"status"`
	Archived      bool            `gorm:"not null;default:false" json:"archived"`
	BaseModel
}

// OrderItem carrega uma cópia desnormalizada do produto no momento da
// compra, para o histórico não depender de edições futuras do catálogo.
type OrderItem struct {
	OrderID     string          `gorm:"primaryKey;type:uuid" json:"-"`
	ProductID   string          `gorm:"primaryKey;type:uuid" json:"product_id"`
	ProductName string          `gorm:"not null;type:varchar(100)" json:"product_name"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	BaseModel
}

// OrderItemsFromCart congela as linhas do carrinho como itens do pedido.
func OrderItemsFromCart(orderID string, cart *Cart) []OrderItem {
	items := make([]OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, OrderItem{
			OrderID:     orderID,
			ProductID:   line.ProductID,
			ProductName: line.Name,
			ImageURL:    line.ImageURL,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		})
	}
	return items
}
