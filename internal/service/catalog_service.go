package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCategory = errors.New("categoria inválida")
	ErrInvalidProduct  = errors.New("dados do produto inválidos")
)

// ProductInput campos editáveis do produto no painel admin.
type ProductInput struct {
	Name     string
	Category string
	ImageURL string
	Price    decimal.Decimal
	Stock    uint
	Active   bool
}

type CatalogService struct {
	productRepo db.IProductRepository
}

func NewCatalogService(productRepo db.IProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ListActive vitrine: só produtos ativos.
func (s *CatalogService) ListActive(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetActiveProducts(ctx)
}

// ListAll catálogo completo para o admin.
func (s *CatalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &model.Product{
		ProductID: uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Category:  input.Category,
		ImageURL:  input.ImageURL,
		Price:     input.Price,
		Stock:     input.Stock,
		Active:    input.Active,
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, input ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Category = input.Category
	product.ImageURL = input.ImageURL
	product.Price = input.Price
	product.Stock = input.Stock
	product.Active = input.Active

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.DeleteProduct(ctx, productID)
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidProduct
	}
	if input.Price.IsNegative() {
		return ErrInvalidProduct
	}
	if !model.IsValidCategory(input.Category) {
		return ErrInvalidCategory
	}
	return nil
}
