package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

var ErrConsumerClosed = errors.New("consumer fechado")

// envelope mínimo para indexar o evento; o payload inteiro vai pro jsonb.
type eventEnvelope struct {
	EventID     string    `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	CreatedAt   time.Time `json:"createdAt"`
	EventType   string    `json:"eventType"`
}

// OrderEventConsumer persiste o feed de eventos de pedido na trilha de
// auditoria. Mensagem malformada é descartada com log, não trava o loop.
type OrderEventConsumer struct {
	reader    *kafka.Reader
	eventRepo db.IOrderEventRepository
	closeOnce sync.Once
	closeChan chan struct{}
}

func NewOrderEventConsumer(brokers []string, topic, groupID string, eventRepo db.IOrderEventRepository) *OrderEventConsumer {
	if len(brokers) == 0 {
		return &OrderEventConsumer{eventRepo: eventRepo, closeChan: make(chan struct{})}
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &OrderEventConsumer{reader: reader, eventRepo: eventRepo, closeChan: make(chan struct{})}
}

func (c *OrderEventConsumer) Enabled() bool {
	return c.reader != nil
}

func (c *OrderEventConsumer) checkIsClosed() bool {
	select {
	case <-c.closeChan:
		return true
	default:
		return false
	}
}

// Start consome em background até Stop ou cancelamento do contexto.
func (c *OrderEventConsumer) Start(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	if c.checkIsClosed() {
		return ErrConsumerClosed
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.closeChan:
				return
			default:
			}

			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || c.checkIsClosed() {
					return
				}
				log.Error().Err(err).Msg("falha ao ler evento de pedido")
				continue
			}

			if err := c.handleMessage(ctx, msg); err != nil {
				log.Error().Err(err).Str("key", string(msg.Key)).Msg("falha ao gravar evento de pedido")
			}
		}
	}()
	return nil
}

func (c *OrderEventConsumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		log.Warn().Str("key", string(msg.Key)).Msg("evento malformado descartado")
		return nil
	}

	record := &model.OrderEventRecord{
		EventID:   envelope.EventID,
		OrderID:   envelope.AggregateID,
		EventType: envelope.EventType,
		Payload:   msg.Value,
		CreatedAt: envelope.CreatedAt,
	}
	return c.eventRepo.AppendEvent(ctx, record)
}

func (c *OrderEventConsumer) Stop() {
	c.closeOnce.Do(func() {
		close(c.closeChan)
		if c.reader != nil {
			c.reader.Close()
		}
	})
}
