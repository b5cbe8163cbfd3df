package db

import (
	"context"
	"errors"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"gorm.io/gorm"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - grava pedido + itens numa transação única.
// O snapshot dos itens e o total nunca são regravados depois.
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// Read - pedido por ID com itens
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - pedidos do usuário, mais recentes primeiro
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Read - fila de trabalho do admin: não arquivados, mais recentes primeiro
func (s *OrderRepo) GetActiveOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("archived = ?", false).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Update - só o campo status; itens e total ficam intocados
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status).Error
}

// Update - marca arquivado; some da fila ativa sem apagar o histórico
func (s *OrderRepo) ArchiveOrder(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("archived", true).Error
}

// OrderStats retorna contagem e faturamento para o painel
func (s *OrderRepo) OrderStats(ctx context.Context) (int64, float64, error) {
	var count int64
	var revenue float64
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Select("COUNT(*) as order_count, COALESCE(SUM(total), 0) as revenue").
		Row().
		Scan(&count, &revenue)
	return count, revenue, err
}
