package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// Persisted key layout, fixed by the dashboard's storage contract:
// plain string values, absence of "token" means logged out.
const (
	keyToken = "token"
	keyRole  = "role"
	keyLang  = "lang"
)

// SessionRepository persists the backend session in Redis.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Load reads the persisted session. Missing keys come back as empty strings;
// the caller normalizes torn state.
func (r *SessionRepository) Load(ctx context.Context) (domain.Session, error) {
	vals, err := r.client.MGet(ctx, keyToken, keyRole, keyLang).Result()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	str := func(v any) string {
		s, _ := v.(string)
		return s
	}
	return domain.Session{
		Token: str(vals[0]),
		Role:  domain.Role(str(vals[1])),
		Lang:  str(vals[2]),
	}, nil
}

// Save writes the full session record.
func (r *SessionRepository) Save(ctx context.Context, sess domain.Session) error {
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, keyToken, sess.Token, 0)
		p.Set(ctx, keyRole, string(sess.Role), 0)
		p.Set(ctx, keyLang, sess.Lang, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the credentials but keeps the language preference.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, keyToken, keyRole).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
