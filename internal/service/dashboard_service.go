package service

import (
	"context"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
)

// DashboardStats contadores do painel admin.
type DashboardStats struct {
	ProductCount int64   `json:"product_count"`
	OrderCount   int64   `json:"order_count"`
	Revenue      float64 `json:"revenue"`
	AdminCount   int64   `json:"admin_count"`
}

type DashboardService struct {
	productRepo db.IProductRepository
	orderRepo   db.IOrderRepository
	userRepo    db.IUserRepository
}

func NewDashboardService(productRepo db.IProductRepository, orderRepo db.IOrderRepository, userRepo db.IUserRepository) *DashboardService {
	return &DashboardService{productRepo: productRepo, orderRepo: orderRepo, userRepo: userRepo}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	productCount, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, revenue, err := s.orderRepo.OrderStats(ctx)
	if err != nil {
		return nil, err
	}
	adminCount, err := s.userRepo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		ProductCount: productCount,
		OrderCount:   orderCount,
		Revenue:      revenue,
		AdminCount:   adminCount,
	}, nil
}
