package service

import (
	"context"
	"errors"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
)

var (
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrProductInactive = errors.New("produto indisponível")
)

// ICartRepository é o contrato do carrinho de sessão (redis).
type ICartRepository interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)
	AddLine(ctx context.Context, userID string, snapshot model.CartLine) error
	SetQuantity(ctx context.Context, userID string, productID string, quantity int) error
	RemoveLine(ctx context.Context, userID string, productID string) error
	Clear(ctx context.Context, userID string) error
}

// CartService mantém o carrinho da sessão. O preço da linha é o snapshot do
// catálogo no momento do AddToCart; edição posterior do produto não muda
// linha já adicionada.
type CartService struct {
	cartRepo    ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddToCart incrementa em 1 ou anexa linha nova com snapshot do produto.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string) (*model.Cart, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.Active {
		return nil, ErrProductInactive
	}

	if err := s.cartRepo.AddLine(ctx, userID, model.ProductSnapshot(product)); err != nil {
		return nil, err
	}
	return s.cartRepo.Get(ctx, userID)
}

// UpdateQuantity fixa a quantidade exata; <= 0 remove a linha.
// Linha inexistente é no-op, nunca erro.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error) {
	if err := s.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.Get(ctx, userID)
}

// RemoveFromCart tira a linha; ausente é no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) (*model.Cart, error) {
	if err := s.cartRepo.RemoveLine(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.cartRepo.Get(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepo.Clear(ctx, userID)
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*model.Cart, error) {
	return s.cartRepo.Get(ctx, userID)
}
