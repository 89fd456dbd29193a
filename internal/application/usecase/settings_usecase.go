package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	"github.com/jrfmotorparts/pos-backend/internal/infrastructure/cache"
	"github.com/jrfmotorparts/pos-backend/pkg/config"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

const settingCacheTTL = 5 * time.Minute

// SettingsUseCase parámetros de configuración del punto de venta.
// Lee de la tabla settings con caché read-through; si la clave no existe
// aplica los valores por defecto de la configuración de arranque.
//
// Implementa inventory.ThresholdReader y sales.SettingsReader.
type SettingsUseCase struct {
	settingRepo repository.SettingRepository
	cache       cache.SettingCache
	defaults    config.POSConfig
	log         *logger.Logger
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(
	settingRepo repository.SettingRepository,
	c cache.SettingCache,
	defaults config.POSConfig,
	log *logger.Logger,
) *SettingsUseCase {
	return &SettingsUseCase{
		settingRepo: settingRepo,
		cache:       c,
		defaults:    defaults,
		log:         log.Component("settings"),
	}
}

// value resuelve category/key con caché. Un fallo de Redis degrada a lectura
// directa de BD, nunca tumba la operación.
func (uc *SettingsUseCase) value(ctx context.Context, category, key string) (string, bool) {
	cacheKey := "setting:" + category + ":" + key

	if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
		return cached, true
	} else if err != nil {
		uc.log.Warn().Err(err).Str("key", cacheKey).Msg("fallo leyendo caché de settings")
	}

	s, err := uc.settingRepo.Get(category, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("category", category).Str("setting", key).
			Msg("fallo leyendo setting, se usa el valor por defecto")
		return "", false
	}
	if s == nil {
		return "", false
	}

	if err := uc.cache.Set(ctx, cacheKey, s.Value, settingCacheTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", cacheKey).Msg("fallo escribiendo caché de settings")
	}
	return s.Value, true
}

// LowStockThreshold umbral de stock bajo vigente.
func (uc *SettingsUseCase) LowStockThreshold(ctx context.Context) int64 {
	raw, ok := uc.value(ctx, entity.SettingCategoryInventory, entity.SettingKeyLowStockThreshold)
	if ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
			return n
		}
	}
	return int64(uc.defaults.LowStockThreshold)
}

// HighValueThreshold monto a partir del cual una venta dispara alerta.
func (uc *SettingsUseCase) HighValueThreshold(ctx context.Context) decimal.Decimal {
	raw, ok := uc.value(ctx, entity.SettingCategorySales, entity.SettingKeyHighValueThreshold)
	if ok {
		if d, err := decimal.NewFromString(raw); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.NewFromFloat(uc.defaults.HighValueThreshold)
}

// StoreName nombre del negocio (encabezado de recibos).
func (uc *SettingsUseCase) StoreName(ctx context.Context) string {
	if raw, ok := uc.value(ctx, entity.SettingCategoryGeneral, entity.SettingKeyStoreName); ok && raw != "" {
		return raw
	}
	return uc.defaults.StoreName
}

// Currency moneda para recibos y reportes.
func (uc *SettingsUseCase) Currency(ctx context.Context) string {
	if raw, ok := uc.value(ctx, entity.SettingCategoryGeneral, entity.SettingKeyCurrency); ok && raw != "" {
		return raw
	}
	return uc.defaults.Currency
}

// Update crea o reemplaza un parámetro e invalida su entrada de caché.
func (uc *SettingsUseCase) Update(ctx context.Context, category, key string, in dto.UpdateSettingRequest, updatedBy string) (*dto.SettingResponse, error) {
	if category == "" || key == "" {
		return nil, domain.ErrInvalidInput
	}

	s, err := uc.settingRepo.Get(category, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.Setting{
			ID:       uuid.New().String(),
			Category: category,
			Key:      key,
			Type:     "string",
		}
	}
	s.Value = in.Value
	if in.Type != "" {
		s.Type = in.Type
	}
	s.UpdatedAt = time.Now()
	s.UpdatedBy = updatedBy

	if err := uc.settingRepo.Upsert(s); err != nil {
		return nil, err
	}

	cacheKey := "setting:" + category + ":" + key
	if err := uc.cache.Delete(ctx, cacheKey); err != nil {
		uc.log.Warn().Err(err).Str("key", cacheKey).Msg("fallo invalidando caché de settings")
	}

	return settingToResponse(s), nil
}

// ListAll lista todos los parámetros persistidos.
func (uc *SettingsUseCase) ListAll(ctx context.Context) ([]*dto.SettingResponse, error) {
	settings, err := uc.settingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, settingToResponse(s))
	}
	return out, nil
}

// SeedDefaults inserta los parámetros iniciales si no existen todavía.
func (uc *SettingsUseCase) SeedDefaults(ctx context.Context) error {
	seeds := []entity.Setting{
		{
			Category:    entity.SettingCategoryInventory,
			Key:         entity.SettingKeyLowStockThreshold,
			Value:       strconv.Itoa(uc.defaults.LowStockThreshold),
			Type:        "number",
			Description: "Cantidad por debajo de la cual un repuesto se considera stock bajo",
		},
		{
			Category:    entity.SettingCategorySales,
			Key:         entity.SettingKeyHighValueThreshold,
			Value:       strconv.FormatFloat(uc.defaults.HighValueThreshold, 'f', 2, 64),
			Type:        "number",
			Description: "Monto a partir del cual una venta dispara alerta a gerencia",
		},
		{
			Category:    entity.SettingCategoryGeneral,
			Key:         entity.SettingKeyStoreName,
			Value:       uc.defaults.StoreName,
			Type:        "string",
			Description: "Nombre del negocio para recibos",
		},
		{
			Category:    entity.SettingCategoryGeneral,
			Key:         entity.SettingKeyCurrency,
			Value:       uc.defaults.Currency,
			Type:        "string",
			Description: "Moneda para recibos y reportes",
		},
	}

	for i := range seeds {
		existing, err := uc.settingRepo.Get(seeds[i].Category, seeds[i].Key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		seeds[i].ID = uuid.New().String()
		seeds[i].UpdatedAt = time.Now()
		if err := uc.settingRepo.Upsert(&seeds[i]); err != nil {
			return err
		}
	}
	return nil
}

func settingToResponse(s *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Category:    s.Category,
		Key:         s.Key,
		Value:       s.Value,
		Type:        s.Type,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}
