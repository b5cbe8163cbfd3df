package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyCart       = errors.New("carrinho vazio")
	ErrMissingCustomer = errors.New("nome e email do cliente são obrigatórios")
	ErrInvalidStatus   = errors.New("status de pedido inválido")
)

// IOrderEventPublisher publica o ciclo de vida do pedido no feed.
type IOrderEventPublisher interface {
	OrderCreated(ctx context.Context, order *model.Order) error
	OrderStatusChanged(ctx context.Context, orderID string, from, to model.OrderStatus) error
	OrderArchived(ctx context.Context, orderID string, status model.OrderStatus) error
}

// ManualOrderItem é uma linha do pedido montado manualmente pela equipe.
type ManualOrderItem struct {
	ProductID string
	Quantity  int
}

// ManualOrderDraft é o rascunho do construtor de pedidos do admin.
type ManualOrderDraft struct {
	CustomerName  string
	CustomerEmail string
	Status        model.OrderStatus
	Items         []ManualOrderItem
}

// CheckoutService congela o carrinho num pedido durável. O carrinho só é
// limpo depois que a gravação confirma; em falha ele fica intacto e o
// reenvio cria um pedido novo (sem idempotência, limitação aceita).
type CheckoutService struct {
	orderRepo   db.IOrderRepository
	cartRepo    ICartRepository
	userRepo    db.IUserRepository
	productRepo db.IProductRepository
	events      IOrderEventPublisher
}

func NewCheckoutService(
	orderRepo db.IOrderRepository,
	cartRepo ICartRepository,
	userRepo db.IUserRepository,
	productRepo db.IProductRepository,
	events IOrderEventPublisher,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		events:      events,
	}
}

// Checkout converte o carrinho da sessão em pedido pago_simulado.
func (s *CheckoutService) Checkout(ctx context.Context, identity model.UserIdentity) (*model.Order, error) {
	cart, err := s.cartRepo.Get(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	customerName, err := s.resolveCustomerName(ctx, identity)
	if err != nil {
		return nil, err
	}
	if customerName == "" || identity.Email == "" {
		return nil, ErrMissingCustomer
	}

	userID := identity.UserID
	orderID := uuid.New().String()
	order := &model.Order{
		OrderID:       orderID,
		UserID:        &userID,
		CustomerName:  customerName,
		CustomerEmail: identity.Email,
		Items:         model.OrderItemsFromCart(orderID, cart),
		Total:         cart.TotalPrice(),
		Status:        model.OrderStatusPagoSimulado,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		// carrinho fica intacto para nova tentativa
		return nil, err
	}

	// limpa só depois da gravação confirmada
	if err := s.cartRepo.Clear(ctx, identity.UserID); err != nil {
		log.Warn().Err(err).Str("user_id", identity.UserID).Msg("pedido gravado mas carrinho não foi limpo")
	}

	s.publishCreated(ctx, order)
	return order, nil
}

// CreateManualOrder monta um pedido pela equipe a partir do catálogo,
// com identidade informada à mão e status inicial escolhido.
// UserID fica nulo para marcar o pedido como manual.
func (s *CheckoutService) CreateManualOrder(ctx context.Context, draft ManualOrderDraft) (*model.Order, error) {
	if strings.TrimSpace(draft.CustomerName) == "" || strings.TrimSpace(draft.CustomerEmail) == "" {
		return nil, ErrMissingCustomer
	}
	if !draft.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	// mesma semântica de linhas do carrinho: merge por produto, piso de 1
	cart := &model.Cart{}
	for _, item := range draft.Items {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		cart.Add(model.ProductSnapshot(product))
		cart.SetQuantity(product.ProductID, item.Quantity)
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	orderID := uuid.New().String()
	order := &model.Order{
		OrderID:       orderID,
		UserID:        nil,
		CustomerName:  strings.TrimSpace(draft.CustomerName),
		CustomerEmail: strings.TrimSpace(draft.CustomerEmail),
		Items:         model.OrderItemsFromCart(orderID, cart),
		Total:         cart.TotalPrice(),
		Status:        draft.Status,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, order)
	return order, nil
}

// resolveCustomerName segue a ordem: nome do perfil, parte local do email,
// "Cliente".
func (s *CheckoutService) resolveCustomerName(ctx context.Context, identity model.UserIdentity) (string, error) {
	profile, err := s.userRepo.GetProfile(ctx, identity.UserID)
	if err != nil {
		return "", err
	}
	if profile != nil && profile.FullName != "" {
		return profile.FullName, nil
	}
	if at := strings.Index(identity.Email, "@"); at > 0 {
		return identity.Email[:at], nil
	}
	return "Cliente", nil
}

func (s *CheckoutService) publishCreated(ctx context.Context, order *model.Order) {
	if err := s.events.OrderCreated(ctx, order); err != nil {
		log.Warn().Err(err).Str("order_id", order.OrderID).Msg("falha ao publicar evento de pedido criado")
	}
}
