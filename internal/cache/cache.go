package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/stylohub/stylohub-api/internal/models"
)

const profileTTL = 5 * time.Minute

// ProfileCache guarda a linha de perfil por identidade. É opcional:
// sem REDIS_URL o ponteiro é nil e todos os métodos viram no-op, o
// lookup segue direto pro banco.
type ProfileCache struct {
	rdb *redis.Client
}

func New(redisURL string) *ProfileCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis disabled, invalid REDIS_URL: %v", err)
		return nil
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis disabled, ping failed: %v", err)
		return nil
	}

	return &ProfileCache{rdb: rdb}
}

// A chave carrega o id da identidade: trocar de conta nunca enxerga o
// perfil de outro usuário.
func key(clerkUserID string) string {
	return "stylohub:profile:" + clerkUserID
}

func (c *ProfileCache) Get(ctx context.Context, clerkUserID string) (*models.Barber, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(clerkUserID)).Bytes()
	if err != nil {
		return nil, false
	}

	var row models.Barber
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, false
	}
	return &row, true
}

func (c *ProfileCache) Set(ctx context.Context, clerkUserID string, row *models.Barber) {
	if c == nil || row == nil {
		return
	}

	raw, err := json.Marshal(row)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(clerkUserID), raw, profileTTL).Err(); err != nil {
		log.Printf("profile cache set failed: %v", err)
	}
}

func (c *ProfileCache) Invalidate(ctx context.Context, clerkUserID string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(clerkUserID)).Err(); err != nil {
		log.Printf("profile cache invalidate failed: %v", err)
	}
}
