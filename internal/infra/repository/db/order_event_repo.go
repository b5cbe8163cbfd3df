package db

import (
	"context"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"gorm.io/gorm/clause"
)

type OrderEventRepo struct {
	db *DbDao
}

func NewOrderEventRepo(db *DbDao) *OrderEventRepo {
	return &OrderEventRepo{db: db}
}

// AppendEvent grava o evento consumido do feed. EventID repetido é ignorado,
// o consumer pode reentregar mensagens.
func (s *OrderEventRepo) AppendEvent(ctx context.Context, record *model.OrderEventRecord) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(record).Error
}

func (s *OrderEventRepo) ListEventsByOrderID(ctx context.Context, orderID string) ([]model.OrderEventRecord, error) {
	var records []model.OrderEventRecord
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&records).Error
	return records, err
}
