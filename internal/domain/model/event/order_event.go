package model

import (
	"time"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Eventos de ciclo de vida do pedido publicados no feed kafka.
// O pedido em si já está persistido; o feed é integração/auditoria.

type OrderCreatedEvent struct {
	BaseEvent
	UserID        *string           `json:"user_id"`
	CustomerEmail string            `json:"customer_email"`
	Items         []model.OrderItem `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Status        model.OrderStatus `json:"status"`
	Manual        bool              `json:"manual"`
}

func (e *OrderCreatedEvent) Type() EventType {
	return OrderCreatedEventName
}

type OrderStatusChangedEvent struct {
	BaseEvent
	FromStatus model.OrderStatus `json:"from_status"`
	ToStatus   model.OrderStatus `json:"to_status"`
}

func (e *OrderStatusChangedEvent) Type() EventType {
	return OrderStatusChangedEventName
}

type OrderArchivedEvent struct {
	BaseEvent
	Status model.OrderStatus `json:"status"`
}

func (e *OrderArchivedEvent) Type() EventType {
	return OrderArchivedEventName
}

func newBaseEvent(orderID string, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: orderID,
		CreatedAt:   time.Now().UTC(),
		EventType:   eventType,
	}
}

func NewOrderCreatedEvent(order *model.Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseEvent:     newBaseEvent(order.OrderID, OrderCreatedEventName),
		UserID:        order.UserID,
		CustomerEmail: order.CustomerEmail,
		Items:         order.Items,
		Total:         order.Total,
		Status:        order.Status,
		Manual:        order.UserID == nil,
	}
}

func NewOrderStatusChangedEvent(orderID string, from, to model.OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseEvent:  newBaseEvent(orderID, OrderStatusChangedEventName),
		FromStatus: from,
		ToStatus:   to,
	}
}

func NewOrderArchivedEvent(orderID string, status model.OrderStatus) *OrderArchivedEvent {
	return &OrderArchivedEvent{
		BaseEvent: newBaseEvent(orderID, OrderArchivedEventName),
		Status:    status,
	}
}
