package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Les sessions actives sont indexées par utilisateur dans un set redis,
// chaque session ayant sa propre clé porteuse du TTL. Une session dont
// la clé a expiré est purgée du set à la prochaine vérification.
type SessionRepositoryInterface interface {
	Register(ctx context.Context, userID, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, userID, sessionID string) (bool, error)
	Delete(ctx context.Context, userID, sessionID string) error
	DeleteOthers(ctx context.Context, userID, keepSessionID string) (int64, error)
}

type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepositoryInterface {
	return &SessionRepository{client: client}
}

func sessionKey(userID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}

func sessionSetKey(userID string) string {
	return fmt.Sprintf("sessions:%s", userID)
}

func (r *SessionRepository) Register(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(userID, sessionID), "1", ttl)
	pipe.SAdd(ctx, sessionSetKey(userID), sessionID)
	pipe.Expire(ctx, sessionSetKey(userID), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *SessionRepository) Exists(ctx context.Context, userID, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(userID, sessionID)).Result()
	if err != nil {
		return false, err
	}
	if n == 0 {
		// clé expirée, on nettoie le set
		r.client.SRem(ctx, sessionSetKey(userID), sessionID)
		return false, nil
	}
	return true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID, sessionID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(userID, sessionID))
	pipe.SRem(ctx, sessionSetKey(userID), sessionID)
	_, err := pipe.Exec(ctx)
	return err
}

// DeleteOthers révoque toutes les sessions de l'utilisateur sauf celle
// indiquée et retourne le nombre de sessions révoquées.
func (r *SessionRepository) DeleteOthers(ctx context.Context, userID, keepSessionID string) (int64, error) {
	members, err := r.client.SMembers(ctx, sessionSetKey(userID)).Result()
	if err != nil {
		return 0, err
	}

	var revoked int64
	for _, sessionID := range members {
		if sessionID == keepSessionID {
			continue
		}
		if err := r.Delete(ctx, userID, sessionID); err != nil {
			return revoked, err
		}
		revoked++
	}
	return revoked, nil
}
