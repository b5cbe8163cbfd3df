package service

import (
	"context"
	"errors"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
)

var ErrOrderNotExist = errors.New("pedido não encontrado")

// OrderService cobre a leitura de pedidos e a fila de trabalho do admin.
// Status e arquivamento são os únicos campos mutáveis após a criação;
// itens e total nunca são alterados por aqui.
type OrderService struct {
	orderRepo db.IOrderRepository
	eventRepo db.IOrderEventRepository
	events    IOrderEventPublisher
}

func NewOrderService(orderRepo db.IOrderRepository, eventRepo db.IOrderEventRepository, events IOrderEventPublisher) *OrderService {
	return &OrderService{orderRepo: orderRepo, eventRepo: eventRepo, events: events}
}

// ListUserOrders pedidos do cliente, mais recentes primeiro.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orderRepo.GetOrdersByUserID(ctx, userID)
}

// ListWorklist pedidos não arquivados para o painel, mais recentes primeiro.
func (s *OrderService) ListWorklist(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.GetActiveOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotExist
	}
	return order, nil
}

// UpdateStatus aplica o status escolhido pela equipe. O fluxo é sugerido,
// qualquer status válido pode ser aplicado sobre qualquer outro.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, to model.OrderStatus) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	// o repo pode devolver o registro compartilhado; congela o status
	// anterior antes da gravação sobrescrever
	from := order.Status

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, to); err != nil {
		return err
	}

	if err := s.events.OrderStatusChanged(ctx, orderID, from, to); err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("falha ao publicar mudança de status")
	}
	return nil
}

// Archive esconde o pedido da fila ativa sem apagar o histórico.
func (s *OrderService) Archive(ctx context.Context, orderID string) error {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.orderRepo.ArchiveOrder(ctx, orderID); err != nil {
		return err
	}

	if err := s.events.OrderArchived(ctx, orderID, order.Status); err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("falha ao publicar arquivamento")
	}
	return nil
}

// OrderEvents trilha de auditoria do pedido, do feed kafka.
func (s *OrderService) OrderEvents(ctx context.Context, orderID string) ([]model.OrderEventRecord, error) {
	return s.eventRepo.ListEventsByOrderID(ctx, orderID)
}
