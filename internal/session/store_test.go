package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache хранит записи в памяти, имитируя TTL-поведение redis.
type fakeCache struct {
	values  map[string]Data
	expires map[string]time.Time
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values:  make(map[string]Data),
		expires: make(map[string]time.Time),
	}
}

func (f *fakeCache) Get(_ context.Context, key string, result any) (bool, error) {
	data, ok := f.values[key]
	if !ok || time.Now().After(f.expires[key]) {
		return false, nil
	}
	*(result.(*Data)) = data
	return true, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	f.values[key] = value.(Data)
	f.expires[key] = time.Now().Add(expiration)
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, key string) error {
	delete(f.values, key)
	delete(f.expires, key)
	return nil
}

func TestStore_CreateGetDestroy(t *testing.T) {
	store := NewStore(newFakeCache(), "session_id", 24*time.Hour, false)
	ctx := context.Background()

	data := Data{UserUID: "uid-1", Username: "alice", Role: "user"}
	id, err := store.Create(ctx, data)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, data, *got)

	require.NoError(t, store.Destroy(ctx, id))

	_, err = store.Get(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Get_UnknownSession(t *testing.T) {
	store := NewStore(newFakeCache(), "session_id", 24*time.Hour, false)

	_, err := store.Get(context.Background(), "no-such-session")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Create_UniqueIDs(t *testing.T) {
	store := NewStore(newFakeCache(), "session_id", 24*time.Hour, false)
	ctx := context.Background()

	first, err := store.Create(ctx, Data{UserUID: "uid-1"})
	require.NoError(t, err)
	second, err := store.Create(ctx, Data{UserUID: "uid-1"})
	require.NoError(t, err)

	// Повторный логин того же пользователя дает новую сессию
	assert.NotEqual(t, first, second)
}

func TestStore_Cookies(t *testing.T) {
	store := NewStore(newFakeCache(), "session_id", 24*time.Hour, true)

	cookie := store.NewCookie("abc")
	assert.Equal(t, "session_id", cookie.Name)
	assert.Equal(t, "abc", cookie.Value)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	expired := store.ExpiredCookie()
	assert.Equal(t, "session_id", expired.Name)
	assert.Negative(t, expired.MaxAge)
}

func TestStore_FromRequest(t *testing.T) {
	store := NewStore(newFakeCache(), "session_id", 24*time.Hour, false)

	r := httptest.NewRequest(http.MethodGet, "/secrets", nil)
	assert.Empty(t, store.FromRequest(r))

	r.AddCookie(&http.Cookie{Name: "session_id", Value: "abc"})
	assert.Equal(t, "abc", store.FromRequest(r))
}
