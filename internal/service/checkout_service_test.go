package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc       *CheckoutService
	cartRepo  *fakeCartRepo
	orderRepo *fakeOrderRepo
	userRepo  *fakeUserRepo
	publisher *fakePublisher
}

func newCheckoutFixture() *checkoutFixture {
	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo()
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo(
		testProduct("p1", "Batom Matte Rosê", 10),
		testProduct("p2", "Paleta de Sombras", 10),
	)
	publisher := &fakePublisher{}
	return &checkoutFixture{
		svc:       NewCheckoutService(orderRepo, cartRepo, userRepo, productRepo, publisher),
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (f *checkoutFixture) fillCart(userID string) {
	f.cartRepo.cart(userID).Add(model.CartLine{ProductID: "p1", Name: "Batom Matte Rosê", UnitPrice: decimal.NewFromInt(10)})
	f.cartRepo.cart(userID).Add(model.CartLine{ProductID: "p2", Name: "Paleta de Sombras", UnitPrice: decimal.NewFromInt(10)})
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.Checkout(context.Background(), model.UserIdentity{UserID: "u1", Email: "maria@example.com"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.orderRepo.orders)
}

func TestCheckoutSuccess(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()
	f.fillCart("u1")
	f.userRepo.profiles["u1"] = model.Profile{UserID: "u1", FullName: "Maria S Oliveira", Email: "maria@example.com"}

	order, err := f.svc.Checkout(ctx, model.UserIdentity{UserID: "u1", Email: "maria@example.com"})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(20).Equal(order.Total))
	assert.Equal(t, model.OrderStatusPagoSimulado, order.Status)
	assert.Equal(t, "Maria S Oliveira", order.CustomerName)
	require.NotNil(t, order.UserID)
	assert.Equal(t, "u1", *order.UserID)
	assert.Len(t, order.Items, 2)

	// carrinho limpo só depois da gravação confirmada
	cart, _ := f.cartRepo.Get(ctx, "u1")
	assert.Equal(t, 0, cart.TotalItems())

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, "created", f.publisher.published[0].kind)
}

func TestCheckoutCustomerNameFallback(t *testing.T) {
	f := newCheckoutFixture()
	f.fillCart("u1")

	// sem perfil: usa a parte local do email
	order, err := f.svc.Checkout(context.Background(), model.UserIdentity{UserID: "u1", Email: "joana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "joana", order.CustomerName)
}

func TestCheckoutStoreFailureKeepsCart(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()
	f.fillCart("u1")
	f.orderRepo.failCreate = errors.New("conexão recusada")

	_, err := f.svc.Checkout(ctx, model.UserIdentity{UserID: "u1", Email: "maria@example.com"})
	require.Error(t, err)

	// falha da gravação não mexe no carrinho nem publica evento
	cart, _ := f.cartRepo.Get(ctx, "u1")
	assert.Equal(t, 2, cart.TotalItems())
	assert.Empty(t, f.publisher.published)

	// reenvio após falha cria um pedido novo (sem idempotência)
	f.orderRepo.failCreate = nil
	first, err := f.svc.Checkout(ctx, model.UserIdentity{UserID: "u1", Email: "maria@example.com"})
	require.NoError(t, err)

	f.fillCart("u1")
	second, err := f.svc.Checkout(ctx, model.UserIdentity{UserID: "u1", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestCreateManualOrder(t *testing.T) {
	f := newCheckoutFixture()

	order, err := f.svc.CreateManualOrder(context.Background(), ManualOrderDraft{
		CustomerName:  "Cliente Balcão",
		CustomerEmail: "balcao@example.com",
		Status:        model.OrderStatusPreparando,
		Items: []ManualOrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// pedido manual: user_id nulo, status escolhido pela equipe
	assert.Nil(t, order.UserID)
	assert.Equal(t, model.OrderStatusPreparando, order.Status)
	assert.True(t, decimal.NewFromInt(30).Equal(order.Total))
	assert.Len(t, order.Items, 2)
}

func TestCreateManualOrderGuards(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	_, err := f.svc.CreateManualOrder(ctx, ManualOrderDraft{
		CustomerEmail: "balcao@example.com",
		Status:        model.OrderStatusPreparando,
		Items:         []ManualOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrMissingCustomer)

	_, err = f.svc.CreateManualOrder(ctx, ManualOrderDraft{
		CustomerName:  "Cliente Balcão",
		CustomerEmail: "balcao@example.com",
		Status:        "despachado",
		Items:         []ManualOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// quantidade <= 0 derruba a linha; rascunho só com elas fica vazio
	_, err = f.svc.CreateManualOrder(ctx, ManualOrderDraft{
		CustomerName:  "Cliente Balcão",
		CustomerEmail: "balcao@example.com",
		Status:        model.OrderStatusPreparando,
		Items:         []ManualOrderItem{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSnapshotDecoupledFromCatalog(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()
	f.fillCart("u1")

	order, err := f.svc.Checkout(ctx, model.UserIdentity{UserID: "u1", Email: "maria@example.com"})
	require.NoError(t, err)

	// o item congela nome e preço do momento da compra
	assert.Equal(t, "Batom Matte Rosê", order.Items[0].ProductName)
	assert.True(t, decimal.NewFromInt(10).Equal(order.Items[0].UnitPrice))
}
