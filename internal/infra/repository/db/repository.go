package db

import (
	"context"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
)

// IProductRepository operações de catálogo
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID string) (*model.Product, error)
	GetActiveProducts(ctx context.Context) ([]model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	CountProducts(ctx context.Context) (int64, error)
}

// IOrderRepository operações de pedido
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)
	GetActiveOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	ArchiveOrder(ctx context.Context, id string) error
	OrderStats(ctx context.Context) (int64, float64, error)
}

// IUserRepository perfis e papéis
type IUserRepository interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	HasRole(ctx context.Context, userID, role string) (bool, error)
	ListByRole(ctx context.Context, role string) ([]model.UserRole, error)
	GrantRole(ctx context.Context, userID, role string) (*model.UserRole, error)
	RevokeRole(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

// IOrderEventRepository trilha de auditoria do feed de eventos
type IOrderEventRepository interface {
	AppendEvent(ctx context.Context, record *model.OrderEventRecord) error
	ListEventsByOrderID(ctx context.Context, orderID string) ([]model.OrderEventRecord, error)
}
