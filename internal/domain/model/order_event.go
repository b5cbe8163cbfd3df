package model

import "time"

// OrderEventRecord é a trilha de auditoria dos eventos de pedido,
// alimentada pelo consumer do feed kafka.
type OrderEventRecord struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	EventID   string    `gorm:"not null;type:uuid;uniqueIndex" json:"event_id"`
	OrderID   string    `gorm:"not null;type:uuid;index" json:"order_id"`
	EventType string    `gorm:"not null;type:varchar(50)" json:"event_type"`
	Payload   []byte    `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}
