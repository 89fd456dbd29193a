package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/usecase"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/pkg/config"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memSettingRepo struct {
	byKey map[string]*entity.Setting // "category/key"
	gets  int
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{byKey: map[string]*entity.Setting{}}
}

func (r *memSettingRepo) Get(category, key string) (*entity.Setting, error) {
	r.gets++
	s, ok := r.byKey[category+"/"+key]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSettingRepo) Upsert(s *entity.Setting) error {
	cp := *s
	r.byKey[s.Category+"/"+s.Key] = &cp
	return nil
}

func (r *memSettingRepo) ListAll() ([]*entity.Setting, error) {
	var out []*entity.Setting
	for _, s := range r.byKey {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// memCache caché en memoria; con failing=true todas las operaciones fallan,
// para verificar la degradación a lectura directa de BD.
type memCache struct {
	data    map[string]string
	failing bool
}

func newMemCache() *memCache { return &memCache{data: map[string]string{}} }

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.failing {
		return "", false, errors.New("redis caído")
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if c.failing {
		return errors.New("redis caído")
	}
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	if c.failing {
		return errors.New("redis caído")
	}
	delete(c.data, key)
	return nil
}

var testDefaults = config.POSConfig{
	LowStockThreshold:  5,
	HighValueThreshold: 5000,
	Currency:           "PHP",
	StoreName:          "JRF Motorcycle Parts & Accessories",
}

func newSettingsUC(repo *memSettingRepo, c *memCache) *usecase.SettingsUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return usecase.NewSettingsUseCase(repo, c, testDefaults, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura con defaults y read-through
// ──────────────────────────────────────────────────────────────────────────────

// Tabla vacía: todos los valores caen a los defaults de arranque.
func TestSettings_DefaultsConTablaVacia(t *testing.T) {
	uc := newSettingsUC(newMemSettingRepo(), newMemCache())
	ctx := context.Background()

	assert.Equal(t, int64(5), uc.LowStockThreshold(ctx))
	assert.True(t, uc.HighValueThreshold(ctx).Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "PHP", uc.Currency(ctx))
	assert.Equal(t, "JRF Motorcycle Parts & Accessories", uc.StoreName(ctx))
}

// El valor persistido pisa el default, y la segunda lectura sale del caché
// sin tocar la BD.
func TestSettings_ValorPersistidoYCache(t *testing.T) {
	repo := newMemSettingRepo()
	require.NoError(t, repo.Upsert(&entity.Setting{
		ID:       "s1",
		Category: entity.SettingCategoryInventory,
		Key:      entity.SettingKeyLowStockThreshold,
		Value:    "12",
		Type:     "number",
	}))
	uc := newSettingsUC(repo, newMemCache())
	ctx := context.Background()

	assert.Equal(t, int64(12), uc.LowStockThreshold(ctx))
	getsAfterFirst := repo.gets

	assert.Equal(t, int64(12), uc.LowStockThreshold(ctx))
	assert.Equal(t, getsAfterFirst, repo.gets, "la segunda lectura debe salir del caché")
}

// Caché caído: la lectura degrada a BD y la operación no falla.
func TestSettings_CacheCaidoDegradaABD(t *testing.T) {
	repo := newMemSettingRepo()
	require.NoError(t, repo.Upsert(&entity.Setting{
		ID:       "s1",
		Category: entity.SettingCategoryInventory,
		Key:      entity.SettingKeyLowStockThreshold,
		Value:    "7",
	}))
	c := newMemCache()
	c.failing = true
	uc := newSettingsUC(repo, c)

	assert.Equal(t, int64(7), uc.LowStockThreshold(context.Background()))
}

// Valor persistido ilegible (no numérico o negativo): se usa el default.
func TestSettings_ValorCorruptoCaeADefault(t *testing.T) {
	for _, bad := range []string{"abc", "-3", ""} {
		repo := newMemSettingRepo()
		require.NoError(t, repo.Upsert(&entity.Setting{
			ID:       "s1",
			Category: entity.SettingCategoryInventory,
			Key:      entity.SettingKeyLowStockThreshold,
			Value:    bad,
		}))
		uc := newSettingsUC(repo, newMemCache())
		assert.Equal(t, int64(5), uc.LowStockThreshold(context.Background()),
			"valor %q debe caer al default", bad)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update e invalidación
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_UpdateInvalidaCache(t *testing.T) {
	repo := newMemSettingRepo()
	c := newMemCache()
	uc := newSettingsUC(repo, c)
	ctx := context.Background()

	_, err := uc.Update(ctx, entity.SettingCategoryInventory, entity.SettingKeyLowStockThreshold,
		dto.UpdateSettingRequest{Value: "8", Type: "number"}, "staff-001")
	require.NoError(t, err)
	assert.Equal(t, int64(8), uc.LowStockThreshold(ctx))

	// Segundo update: la lectura siguiente debe ver el valor nuevo, no el cacheado
	_, err = uc.Update(ctx, entity.SettingCategoryInventory, entity.SettingKeyLowStockThreshold,
		dto.UpdateSettingRequest{Value: "15"}, "staff-001")
	require.NoError(t, err)
	assert.Equal(t, int64(15), uc.LowStockThreshold(ctx),
		"el update debe invalidar la entrada de caché")
}

func TestSettings_SeedDefaultsIdempotente(t *testing.T) {
	repo := newMemSettingRepo()
	uc := newSettingsUC(repo, newMemCache())
	ctx := context.Background()

	require.NoError(t, uc.SeedDefaults(ctx))
	assert.Len(t, repo.byKey, 4)

	// Editar un valor y volver a sembrar: el valor editado se respeta
	_, err := uc.Update(ctx, entity.SettingCategoryInventory, entity.SettingKeyLowStockThreshold,
		dto.UpdateSettingRequest{Value: "9"}, "staff-001")
	require.NoError(t, err)

	require.NoError(t, uc.SeedDefaults(ctx))
	assert.Len(t, repo.byKey, 4)
	assert.Equal(t, int64(9), uc.LowStockThreshold(ctx),
		"re-sembrar no pisa valores editados")
}
