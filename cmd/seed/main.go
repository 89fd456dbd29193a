// seed inicializa la base con datos de arranque: un usuario admin, los settings
// por defecto, proveedores y un catálogo de muestra. Idempotente: los registros
// existentes se respetan.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jrfmotorparts/pos-backend/internal/application/usecase"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/infrastructure/cache"
	"github.com/jrfmotorparts/pos-backend/internal/infrastructure/postgres"
	"github.com/jrfmotorparts/pos-backend/pkg/config"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

type samplePart struct {
	name     string
	partType string
	brand    string
	price    string
	stock    int64
}

var sampleParts = []samplePart{
	{"Oil Filter", "engine", "Yamaha", "100.00", 15},
	{"Brake Pads", "brake", "Honda", "300.00", 8},
	{"Spark Plug", "electrical", "NGK", "50.00", 25},
	{"Air Filter", "engine", "Suzuki", "100.00", 12},
	{"Chain Lubricant", "accessory", "Motul", "200.00", 20},
	{"Clutch Cable", "accessory", "Yamaha", "150.00", 3},
	{"Headlight Bulb", "electrical", "Philips", "80.00", 18},
	{"Rear Tire", "accessory", "Michelin", "1200.00", 6},
}

var sampleSuppliers = []entity.Supplier{
	{Name: "Yamaha Philippines", ContactNo: "+63 2 8123 4567", Address: "Makati City, Metro Manila"},
	{Name: "Honda Parts Philippines", ContactNo: "+63 2 8765 4321", Address: "Quezon City, Metro Manila"},
	{Name: "Suzuki Motor Philippines", ContactNo: "+63 2 8234 5678", Address: "Pasig City, Metro Manila"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	staffRepo := postgres.NewStaffRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)

	// Admin por defecto
	adminEmail := "admin@jrfmotorcycle.com"
	if _, err := staffRepo.FindByEmail(adminEmail); errors.Is(err, domain.ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña admin")
		}
		admin := &entity.Staff{
			ID:           uuid.NewString(),
			Name:         "Administrator",
			Role:         entity.RoleAdmin,
			ContactNo:    "+63 900 000 0000",
			Email:        adminEmail,
			Username:     "admin",
			PasswordHash: string(hash),
		}
		if err := staffRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("username", "admin").Msg("usuario admin creado (cambie la contraseña)")
	}

	// Settings por defecto
	settingsUC := usecase.NewSettingsUseCase(settingRepo, cache.NoopSettingCache{}, cfg.POS, log)
	if err := settingsUC.SeedDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed de settings")
	}

	// Proveedores de muestra
	if n, err := supplierRepo.Count(); err == nil && n == 0 {
		for _, s := range sampleSuppliers {
			s.ID = uuid.NewString()
			if err := supplierRepo.Create(&s); err != nil {
				log.Fatal().Err(err).Str("supplier", s.Name).Msg("crear proveedor")
			}
		}
		log.Info().Int("count", len(sampleSuppliers)).Msg("proveedores de muestra creados")
	}

	// Catálogo de muestra, con su entrada inicial en el libro de movimientos
	if n, err := partRepo.Count(); err == nil && n == 0 {
		for _, p := range sampleParts {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				log.Fatal().Err(err).Str("part", p.name).Msg("precio inválido")
			}
			part := &entity.Part{
				ID:            uuid.NewString(),
				Name:          p.name,
				PartType:      p.partType,
				Brand:         p.brand,
				Price:         price,
				StockQuantity: p.stock,
				UpdatedAt:     time.Now(),
			}
			if err := partRepo.Create(part); err != nil {
				log.Fatal().Err(err).Str("part", p.name).Msg("crear repuesto")
			}
			if p.stock > 0 {
				entry := &entity.StockEntry{
					ID:        uuid.NewString(),
					PartID:    part.ID,
					Quantity:  p.stock,
					EntryDate: time.Now(),
				}
				if err := entryRepo.Append(entry); err != nil {
					log.Fatal().Err(err).Str("part", p.name).Msg("registrar entrada inicial")
				}
			}
		}
		log.Info().Int("count", len(sampleParts)).Msg("catálogo de muestra creado")
	}

	log.Info().Msg("seed completado")
}
