package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func newTestDraftStore(t *testing.T) (*DraftStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewDraftStore(client, time.Hour), mr
}

func TestDraftStore_CreateAndGet(t *testing.T) {
	store, _ := newTestDraftStore(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"first_name":"Іван","duration_hours":2}`)
	id, err := store.Create(ctx, payload)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestDraftStore_GetMissing(t *testing.T) {
	store, _ := newTestDraftStore(t)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftStore_Update(t *testing.T) {
	store, _ := newTestDraftStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, json.RawMessage(`{"step":1}`))
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, id, json.RawMessage(`{"step":2}`)))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":2}`, string(got))
}

func TestDraftStore_UpdateMissing(t *testing.T) {
	store, _ := newTestDraftStore(t)

	err := store.Update(context.Background(), uuid.New(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftStore_Expiry(t *testing.T) {
	store, mr := newTestDraftStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, json.RawMessage(`{"step":1}`))
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftStore_Delete(t *testing.T) {
	store, _ := newTestDraftStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, json.RawMessage(`{"step":1}`))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, store.Delete(ctx, id))
}
