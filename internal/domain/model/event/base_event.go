package model

import "time"

type EventType string

const (
	OrderCreatedEventName       EventType = "OrderCreated"
	OrderStatusChangedEventName EventType = "OrderStatusChanged"
	OrderArchivedEventName      EventType = "OrderArchived"
)

type BaseEvent struct {
	EventID     string    `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	CreatedAt   time.Time `json:"createdAt"`
	EventType   EventType `json:"eventType"`
}

func (e *BaseEvent) GetID() string {
	return e.EventID
}

func (e *BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

type Event interface {
	Type() EventType
	GetID() string
	GetAggregateID() string
}
