package redis_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// Carrinho fica só no redis durante a sessão; vira linha de banco apenas
// no checkout. Cada linha é um field do hash com o snapshot em JSON.
type CartRepo struct {
	CartCache *redis.Client
}

func NewCartRepo(cartCache *redis.Client) *CartRepo {
	return &CartRepo{CartCache: cartCache}
}

func generateCartItemKey(userID string) string {
	return fmt.Sprintf("cart:%s:items", userID)
}

func generateCartMetaKey(userID string) string {
	return fmt.Sprintf("cart:%s:meta", userID)
}

// AddLine incrementa em 1 a linha existente ou anexa a linha nova com o
// snapshot recebido. Script Lua garante atomicidade; seq preserva a ordem
// de inserção, já que HGETALL não tem ordem.
func (r *CartRepo) AddLine(ctx context.Context, userID string, snapshot model.CartLine) error {
	snapshot.Quantity = 1
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("falha ao serializar linha do carrinho: %w", err)
	}

	luaScript := `
		local cur = redis.call('HGET', KEYS[1], ARGV[1])
		if cur then
			local line = cjson.decode(cur)
			line.quantity = line.quantity + 1
			redis.call('HSET', KEYS[1], ARGV[1], cjson.encode(line))
			return line.quantity
		end
		local line = cjson.decode(ARGV[2])
		line.seq = redis.call('HINCRBY', KEYS[2], 'seq', 1)
		redis.call('HSET', KEYS[1], ARGV[1], cjson.encode(line))
		return 1
	`

	keys := []string{generateCartItemKey(userID), generateCartMetaKey(userID)}
	_, err = r.CartCache.Eval(ctx, luaScript, keys, snapshot.ProductID, string(payload)).Result()
	if err != nil {
		return fmt.Errorf("falha ao adicionar item ao carrinho: %w", err)
	}
	return nil
}

// SetQuantity fixa a quantidade exata da linha. Quantidade <= 0 remove a
// linha; produto ausente é no-op, nunca erro.
func (r *CartRepo) SetQuantity(ctx context.Context, userID string, productID string, quantity int) error {
	itemsKey := generateCartItemKey(userID)

	if quantity <= 0 {
		return r.RemoveLine(ctx, userID, productID)
	}

	luaScript := `
		local cur = redis.call('HGET', KEYS[1], ARGV[1])
		if not cur then
			return -1
		end
		local line = cjson.decode(cur)
		line.quantity = tonumber(ARGV[2])
		redis.call('HSET', KEYS[1], ARGV[1], cjson.encode(line))
		return line.quantity
	`

	_, err := r.CartCache.Eval(ctx, luaScript, []string{itemsKey}, productID, quantity).Result()
	if err != nil {
		return fmt.Errorf("falha ao atualizar quantidade: %w", err)
	}
	return nil
}

// RemoveLine tira a linha do carrinho. Ausente é no-op.
func (r *CartRepo) RemoveLine(ctx context.Context, userID string, productID string) error {
	itemsKey := generateCartItemKey(userID)

	err := r.CartCache.HDel(ctx, itemsKey, productID).Err()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("falha ao remover item do carrinho: %w", err)
	}
	return nil
}

// Clear esvazia o carrinho da sessão.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	err := r.CartCache.Del(ctx, generateCartItemKey(userID), generateCartMetaKey(userID)).Err()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("falha ao limpar carrinho: %w", err)
	}
	return nil
}

// Get remonta o carrinho ordenado por seq de inserção. Carrinho inexistente
// volta vazio, não é erro.
func (r *CartRepo) Get(ctx context.Context, userID string) (*model.Cart, error) {
	itemsKey := generateCartItemKey(userID)

	fields, err := r.CartCache.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar carrinho: %w", err)
	}

	cart := &model.Cart{UserID: userID}
	for productID, raw := range fields {
		var line model.CartLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return nil, fmt.Errorf("linha inválida para produto %s: %w", productID, err)
		}
		cart.Lines = append(cart.Lines, line)
	}
	sort.Slice(cart.Lines, func(i, j int) bool {
		return cart.Lines[i].Seq < cart.Lines[j].Seq
	})

	return cart, nil
}
