package db

import (
	"context"
	"errors"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"gorm.io/gorm"
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create - cadastra produto
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - busca produto por ID
func (s *ProductRepo) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - produtos ativos para a vitrine
func (s *ProductRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&products).Error
	return products, err
}

// Read - catálogo completo para o painel admin
func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Order("name").Find(&products).Error
	return products, err
}

// Update - atualiza produto
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Delete - soft delete do produto
func (s *ProductRepo) DeleteProduct(ctx context.Context, productID string) error {
	return s.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.Product{}).Error
}

func (s *ProductRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}
