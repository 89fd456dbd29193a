package cache

import (
	"context"
	"time"
)

// SettingCache caché de valores de settings. Los umbrales se leen en cada
// venta; la caché evita ir a Postgres en la ruta caliente.
type SettingCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopSettingCache implementación nula para entornos sin Redis.
type NoopSettingCache struct{}

func (NoopSettingCache) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (NoopSettingCache) Set(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}

func (NoopSettingCache) Delete(_ context.Context, _ string) error {
	return nil
}
