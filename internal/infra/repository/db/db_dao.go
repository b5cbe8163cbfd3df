package db

import (
	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// InitMigrate inicializa o schema. Idempotente.
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Profile{},
		&model.UserRole{},
		&model.OrderEventRecord{},
	)
}

// SeedProducts carrega o catálogo inicial ("tudo por R$ 10") quando a tabela
// está vazia. O preço fixo é dado de seed, não regra no código.
func (d *DbDao) SeedProducts() error {
	var count int64
	if err := d.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type seed struct {
		name     string
		category string
		image    string
	}
	seeds := []seed{
		{"Batom Matte Rosê", "Maquiagem", "https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400&h=400&fit=crop"},
		{"Base Líquida Natural", "Maquiagem", "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=400&fit=crop"},
		{"Paleta de Sombras", "Maquiagem", "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=400&h=400&fit=crop"},
		{"Rímel Volume Extra", "Maquiagem", "https://images.unsplash.com/photo-1631214524020-7e18db9a8f92?w=400&h=400&fit=crop"},
		{"Hidratante Facial", "Skincare", "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=400&h=400&fit=crop"},
		{"Protetor Solar FPS 50", "Skincare", "https://images.unsplash.com/photo-1556228720-195a672e68a0?w=400&h=400&fit=crop"},
		{"Água Micelar", "Skincare", "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?w=400&h=400&fit=crop"},
		{"Brincos Dourados", "Acessórios", "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=400&fit=crop"},
		{"Pulseira Boho", "Acessórios", "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?w=400&h=400&fit=crop"},
		{"Máscara Capilar", "Cabelo", "https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=400&h=400&fit=crop"},
		{"Óleo de Argan", "Cabelo", "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=400&h=400&fit=crop"},
		{"Kit Esmaltes Neon", "Unhas", "https://images.unsplash.com/photo-1604654894610-df63bc536371?w=400&h=400&fit=crop"},
		{"Película de Unha", "Unhas", "https://images.unsplash.com/photo-1607779097040-26e80aa78e66?w=400&h=400&fit=crop"},
		{"Fone Bluetooth Rosa", "Variedades", "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&h=400&fit=crop"},
		{"Necessaire Estampada", "Variedades", "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=400&fit=crop"},
		{"Espelho de Bolsa LED", "Variedades", "https://images.unsplash.com/photo-1585386959984-a4155224a1ad?w=400&h=400&fit=crop"},
	}

	flatPrice := decimal.NewFromInt(10)
	products := make([]model.Product, 0, len(seeds))
	for _, s := range seeds {
		products = append(products, model.Product{
			ProductID: uuid.New().String(),
			Name:      s.name,
			Category:  s.category,
			ImageURL:  s.image,
			Price:     flatPrice,
			Stock:     100,
			Active:    true,
		})
	}
	return d.Create(&products).Error
}
