package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase/interfaces"
)

const (
	sessionKeyPrefix = "wizard:session:"

	// sessionTTL bounds abandoned drafts. Every Put refreshes it, so an
	// active wizard never expires mid-flight.
	sessionTTL = 24 * time.Hour
)

// SessionRedisStore keeps wizard sessions in Redis as JSON blobs, letting
// drafts survive process restarts and be shared across instances.
type SessionRedisStore struct {
	client *redis.Client
}

var _ interfaces.ISessionStore = (*SessionRedisStore)(nil)

func NewSessionRedisStore(client *redis.Client) *SessionRedisStore {
	return &SessionRedisStore{client: client}
}

func (s *SessionRedisStore) Put(ctx context.Context, session entities.WizardSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, raw, sessionTTL).Err()
}

func (s *SessionRedisStore) Get(ctx context.Context, id string) (entities.WizardSession, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.WizardSession{}, nil
		}
		return entities.WizardSession{}, err
	}

	var session entities.WizardSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return entities.WizardSession{}, err
	}
	return session, nil
}

func (s *SessionRedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
