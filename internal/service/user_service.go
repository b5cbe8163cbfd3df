package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
	"github.com/google/uuid"
)

var (
	ErrUserNotExist  = errors.New("usuário não encontrado")
	ErrInvalidUserID = errors.New("user_id inválido")
)

// ISessionResolver resolve o token de sessão gravado pelo auth externo.
type ISessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.UserIdentity, error)
}

// UserService cobre identidade de sessão e o registro de papéis.
// A checagem de admin no cliente é só conveniência; a fronteira de
// confiança é esta checagem no servidor, em toda rota administrativa.
type UserService struct {
	userRepo    db.IUserRepository
	sessionRepo ISessionResolver
}

func NewUserService(userRepo db.IUserRepository, sessionRepo ISessionResolver) *UserService {
	return &UserService{userRepo: userRepo, sessionRepo: sessionRepo}
}

// ResolveSession token -> identidade; token desconhecido vem como erro do
// resolver.
func (s *UserService) ResolveSession(ctx context.Context, token string) (*model.UserIdentity, error) {
	return s.sessionRepo.Resolve(ctx, token)
}

func (s *UserService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.userRepo.HasRole(ctx, userID, model.RoleAdmin)
}

func (s *UserService) ListAdmins(ctx context.Context) ([]model.UserRole, error) {
	return s.userRepo.ListByRole(ctx, model.RoleAdmin)
}

func (s *UserService) GrantAdmin(ctx context.Context, userID string) (*model.UserRole, error) {
	userID = strings.TrimSpace(userID)
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}
	return s.userRepo.GrantRole(ctx, userID, model.RoleAdmin)
}

func (s *UserService) RevokeAdmin(ctx context.Context, id string) error {
	return s.userRepo.RevokeRole(ctx, id)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotExist
	}
	return profile, nil
}
