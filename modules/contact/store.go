package contact

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lead is an accepted contact request, stored with sanitized field values.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Service     string    `json:"service"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Store persists leads and form drafts.
type Store interface {
	SaveLead(ctx context.Context, lead Lead, ttl time.Duration) error
	SaveDraft(ctx context.Context, id string, fields map[string]string, ttl time.Duration) error
	GetDraft(ctx context.Context, id string) (map[string]string, error)
	DeleteDraft(ctx context.Context, id string) error
}

const (
	leadKeyPrefix  = "lead:"
	draftKeyPrefix = "draft:"
)

// RedisStore keeps leads and drafts as JSON values with TTLs.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a store backed by client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) SaveLead(ctx context.Context, lead Lead, ttl time.Duration) error {
	payload, err := json.Marshal(lead)
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	if err := s.client.Set(ctx, leadKeyPrefix+lead.ID, payload, ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *RedisStore) SaveDraft(ctx context.Context, id string, fields map[string]string, ttl time.Duration) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+id, payload, ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *RedisStore) GetDraft(ctx context.Context, id string) (map[string]string, error) {
	payload, err := s.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreFailed, err)
	}

	var fields map[string]string
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, errors.Join(ErrStoreFailed, err)
	}
	return fields, nil
}

func (s *RedisStore) DeleteDraft(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+id).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
