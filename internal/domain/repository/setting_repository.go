package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// SettingRepository parámetros de configuración persistidos.
// El par (category, key) es único.
type SettingRepository interface {
	Get(category, key string) (*entity.Setting, error)
	Upsert(setting *entity.Setting) error
	ListAll() ([]*entity.Setting, error)
}
