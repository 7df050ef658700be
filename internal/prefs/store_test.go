// internal/prefs/store_test.go
package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-dashboard/internal/common/config"
	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/kvstore"
	"krishi-dashboard/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

var testLanguages = []string{"en", "hi", "ta", "te", "ml", "or", "mr", "kn"}

func createTestPrefs(t *testing.T, store Store) *Preferences {
	t.Helper()
	return New(store, config.I18nConfig{
		DefaultLanguage:  "en",
		FallbackLanguage: "en",
	}, testLanguages, logger.NewTestLogger(t))
}

func createRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := kvstore.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

// ==========================
// MemoryStore Tests
// ==========================

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	lang, err := store.Language(ctx)
	require.NoError(t, err)
	assert.Empty(t, lang)

	require.NoError(t, store.SetLanguage(ctx, "or"))
	lang, err = store.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "or", lang)

	collapsed, err := store.SidebarCollapsed(ctx)
	require.NoError(t, err)
	assert.False(t, collapsed)

	require.NoError(t, store.SetSidebarCollapsed(ctx, true))
	collapsed, err = store.SidebarCollapsed(ctx)
	require.NoError(t, err)
	assert.True(t, collapsed)
}

// ==========================
// Preferences Tests
// ==========================

func TestPreferences_Language(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"nothing stored degrades to default", "", "en"},
		{"supported language", "ta", "ta"},
		{"unsupported language degrades to default", "fr", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()
			if tt.stored != "" {
				require.NoError(t, store.SetLanguage(ctx, tt.stored))
			}
			p := createTestPrefs(t, store)
			assert.Equal(t, tt.want, p.Language(ctx))
		})
	}
}

func TestPreferences_SetLanguage_RejectsUnsupported(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := createTestPrefs(t, store)

	require.NoError(t, p.SetLanguage(ctx, "kn"))
	assert.Equal(t, "kn", p.Language(ctx))

	// Unsupported code is refused; the stored value stays.
	require.NoError(t, p.SetLanguage(ctx, "xx"))
	assert.Equal(t, "kn", p.Language(ctx))
}

type failingStore struct{}

func (failingStore) Language(context.Context) (string, error) { return "", errors.New("down") }
func (failingStore) SetLanguage(context.Context, string) error {
	return errors.New("down")
}
func (failingStore) SidebarCollapsed(context.Context) (bool, error) {
	return false, errors.New("down")
}
func (failingStore) SetSidebarCollapsed(context.Context, bool) error {
	return errors.New("down")
}

func TestPreferences_StoreFailureDegrades(t *testing.T) {
	ctx := context.Background()
	p := createTestPrefs(t, failingStore{})

	assert.Equal(t, "en", p.Language(ctx))
	assert.False(t, p.SidebarCollapsed(ctx))
}

// ==========================
// RedisStore Tests
// ==========================

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := createRedisStore(t)

	lang, err := store.Language(ctx)
	require.NoError(t, err)
	assert.Empty(t, lang)

	require.NoError(t, store.SetLanguage(ctx, "ml"))
	lang, err = store.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ml", lang)

	require.NoError(t, store.SetSidebarCollapsed(ctx, true))
	collapsed, err := store.SidebarCollapsed(ctx)
	require.NoError(t, err)
	assert.True(t, collapsed)
}

func TestRedisStore_KeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	store, mr := createRedisStore(t)

	require.NoError(t, store.SetLanguage(ctx, "hi"))
	got, err := mr.Get("krishi:prefs:language")
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestRedisStore_WrapsFailures(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(kvstore.NewRedisFromClient(db))

	mock.ExpectGet("krishi:prefs:language").SetErr(errors.New("connection refused"))

	_, err := store.Language(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodePreferenceStore))
	assert.NoError(t, mock.ExpectationsWereMet())
}
