package db

import (
	"context"
	"errors"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *DbDao
}

func NewUserRepo(db *DbDao) *UserRepo {
	return &UserRepo{db: db}
}

// Read - perfil escrito pelo serviço de auth externo
func (s *UserRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *UserRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

func (s *UserRepo) ListByRole(ctx context.Context, role string) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := s.db.WithContext(ctx).Where("role = ?", role).Order("created_at").Find(&roles).Error
	return roles, err
}

func (s *UserRepo) GrantRole(ctx context.Context, userID, role string) (*model.UserRole, error) {
	userRole := &model.UserRole{
		ID:     uuid.New().String(),
		UserID: userID,
		Role:   role,
	}
	if err := s.db.WithContext(ctx).Create(userRole).Error; err != nil {
		return nil, err
	}
	return userRole, nil
}

func (s *UserRepo) RevokeRole(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.UserRole{}).Error
}

func (s *UserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserRole{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
