package prefs

import (
	"context"

	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/kvstore"
)

// RedisStore persists preferences through the shared Redis wrapper. Keys are
// namespaced so the store can share a database with other services.
type RedisStore struct {
	client *kvstore.RedisClient
	prefix string
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *kvstore.RedisClient) *RedisStore {
	return &RedisStore{client: client, prefix: "krishi:prefs:"}
}

func (r *RedisStore) Language(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.prefix+keyLanguage)
	if err != nil {
		if kvstore.IsNil(err) {
			return "", nil
		}
		return "", apperrors.NewPreferenceStoreError("get language", err)
	}
	return val, nil
}

func (r *RedisStore) SetLanguage(ctx context.Context, lang string) error {
	if err := r.client.Set(ctx, r.prefix+keyLanguage, lang, 0); err != nil {
		return apperrors.NewPreferenceStoreError("set language", err)
	}
	return nil
}

func (r *RedisStore) SidebarCollapsed(ctx context.Context) (bool, error) {
	val, err := r.client.Get(ctx, r.prefix+keySidebar)
	if err != nil {
		if kvstore.IsNil(err) {
			return false, nil
		}
		return false, apperrors.NewPreferenceStoreError("get sidebar", err)
	}
	return val == "true", nil
}

func (r *RedisStore) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	val := "false"
	if collapsed {
		val = "true"
	}
	if err := r.client.Set(ctx, r.prefix+keySidebar, val, 0); err != nil {
		return apperrors.NewPreferenceStoreError("set sidebar", err)
	}
	return nil
}
