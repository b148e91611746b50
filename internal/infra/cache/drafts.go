package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

// DraftStore хранилище черновиков формы бронирования.
// Черновик живет draftTTL с момента последнего сохранения,
// неподтвержденные черновики исчезают сами
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore создает хранилище черновиков с заданным TTL
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{
		client: client,
		ttl:    ttl,
	}
}

// Create сохраняет новый черновик и возвращает его ID
func (s *DraftStore) Create(ctx context.Context, data json.RawMessage) (uuid.UUID, error) {
	id := uuid.New()
	if err := s.client.Set(ctx, draftKey(id), []byte(data), s.ttl).Err(); err != nil {
		return uuid.Nil, fmt.Errorf("%w: create draft: %v", ErrRedis, err)
	}
	return id, nil
}

// Get возвращает черновик по ID
func (s *DraftStore) Get(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
	raw, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get draft: %v", ErrRedis, err)
	}
	return json.RawMessage(raw), nil
}

// Update перезаписывает существующий черновик и продлевает его TTL.
// Возвращает ErrDraftNotFound, если черновик истек или не существовал
func (s *DraftStore) Update(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	ok, err := s.client.SetXX(ctx, draftKey(id), []byte(data), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: update draft: %v", ErrRedis, err)
	}
	if !ok {
		return ErrDraftNotFound
	}
	return nil
}

// Delete удаляет черновик. Удаление несуществующего черновика не ошибка
func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: delete draft: %v", ErrRedis, err)
	}
	return nil
}

func draftKey(id uuid.UUID) string {
	return draftKeyPrefix + id.String()
}
