package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	evt_model "github.com/Malvezin/miglesMakeStore/internal/domain/model/event"
	"github.com/segmentio/kafka-go"
)

// OrderEventProducer publica o ciclo de vida dos pedidos no feed kafka.
// Sem brokers configurados o producer fica desabilitado e cada publish é
// no-op; falha de publicação nunca derruba a operação que o usuário fez.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	if len(brokers) == 0 {
		return &OrderEventProducer{}
	}
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *OrderEventProducer) Enabled() bool {
	return p.writer != nil
}

func (p *OrderEventProducer) OrderCreated(ctx context.Context, order *model.Order) error {
	return p.publish(ctx, evt_model.NewOrderCreatedEvent(order))
}

func (p *OrderEventProducer) OrderStatusChanged(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	return p.publish(ctx, evt_model.NewOrderStatusChangedEvent(orderID, from, to))
}

func (p *OrderEventProducer) OrderArchived(ctx context.Context, orderID string, status model.OrderStatus) error {
	return p.publish(ctx, evt_model.NewOrderArchivedEvent(orderID, status))
}

func (p *OrderEventProducer) publish(ctx context.Context, event evt_model.Event) error {
	if !p.Enabled() {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("falha ao serializar evento %s: %w", event.Type(), err)
	}

	msg := kafka.Message{
		Key:   []byte(event.GetAggregateID()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type())},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
