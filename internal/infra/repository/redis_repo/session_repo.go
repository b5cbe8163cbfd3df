package redis_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("sessão não encontrada")

// SessionRepo só lê as sessões que o serviço de auth externo grava no redis.
// Emissão e expiração de credenciais não são responsabilidade daqui.
type SessionRepo struct {
	client *redis.Client
}

func NewSessionRepo(client *redis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func generateSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Resolve mapeia o token da sessão para a identidade do usuário.
func (r *SessionRepo) Resolve(ctx context.Context, token string) (*model.UserIdentity, error) {
	fields, err := r.client.HGetAll(ctx, generateSessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("falha ao resolver sessão: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	identity := &model.UserIdentity{
		UserID: fields["user_id"],
		Email:  fields["email"],
	}
	if identity.UserID == "" {
		return nil, ErrSessionNotFound
	}
	return identity, nil
}
