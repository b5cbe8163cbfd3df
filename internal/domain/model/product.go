package model

import (
	"github.com/shopspring/decimal"
)

// Categorias fixas da loja
var Categories = []string{
	"Maquiagem",
	"Skincare",
	"Acessórios",
	"Cabelo",
	"Unhas",
	"Variedades",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ProductID string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string          `gorm:"not null;type:varchar(100)" json:"name"`
	Category  string          `gorm:"not null;type:varchar(50)" json:"category"`
	ImageURL  string          `gorm:"type:text" json:"image_url"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock     uint            `gorm:"not null;default:0" json:"stock"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	BaseModel
}
