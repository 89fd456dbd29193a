package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/inventory"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
)

func newTestUseCase(db *memDB) *inventory.UseCase {
	return inventory.NewUseCase(
		&memTxRunner{db},
		&memPartRepo{db},
		&memEntryRepo{db},
		fixedThreshold{5},
	)
}

func seedPart(t *testing.T, db *memDB, id string, stock int64) {
	t.Helper()
	err := (&memPartRepo{db}).Create(&entity.Part{
		ID:            id,
		Name:          "Part " + id,
		Price:         decimal.NewFromInt(100),
		StockQuantity: stock,
	})
	require.NoError(t, err)
	if stock != 0 {
		require.NoError(t, (&memEntryRepo{db}).Append(&entity.StockEntry{
			ID: "seed-" + id, PartID: id, Quantity: stock,
		}))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ClampDelta: la regla de clamp en cero, caso por caso.
// ──────────────────────────────────────────────────────────────────────────────

func TestClampDelta(t *testing.T) {
	cases := []struct {
		name        string
		current     int64
		delta       int64
		wantQty     int64
		wantApplied int64
	}{
		{"incremento simple", 5, 3, 8, 3},
		{"decremento simple", 5, -3, 2, -3},
		{"decremento exacto a cero", 5, -5, 0, -5},
		{"decremento recortado", 3, -10, 0, -3},
		{"desde cero hacia abajo", 0, -4, 0, 0},
		{"delta cero", 7, 0, 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qty, applied := inventory.ClampDelta(tc.current, tc.delta)
			assert.Equal(t, tc.wantQty, qty, "nueva cantidad")
			assert.Equal(t, tc.wantApplied, applied, "delta aplicado")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock: ajustes manuales con libro.
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_Incremento(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", 10)
	uc := newTestUseCase(db)

	resp, err := uc.AdjustStock(context.Background(), "p1", 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.RequestedDelta)
	assert.Equal(t, int64(5), resp.AppliedDelta)
	assert.Equal(t, int64(15), resp.NewQuantity)
	assert.Equal(t, int64(15), db.parts["p1"].StockQuantity)
}

// Decremento que excede el stock: se recorta en cero y el libro registra el
// delta realmente aplicado, no el solicitado.
func TestAdjustStock_DecrementoRecortadoEnCero(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", 3)
	uc := newTestUseCase(db)

	resp, err := uc.AdjustStock(context.Background(), "p1", -10)
	require.NoError(t, err)

	assert.Equal(t, int64(-10), resp.RequestedDelta)
	assert.Equal(t, int64(-3), resp.AppliedDelta, "el libro registra el delta aplicado")
	assert.Equal(t, int64(0), resp.NewQuantity)

	last := db.entries[len(db.entries)-1]
	assert.Equal(t, int64(-3), last.Quantity)
}

func TestAdjustStock_DeltaCeroRechazado(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", 3)
	uc := newTestUseCase(db)

	_, err := uc.AdjustStock(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_RepuestoInexistente(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db)

	_, err := uc.AdjustStock(context.Background(), "no-existe", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Propiedad de consistencia: tras cualquier secuencia de ajustes, la suma del
// libro de un repuesto es igual a su stock actual.
func TestAdjustStock_SumaDelLibroIgualaStock(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", 0)
	uc := newTestUseCase(db)
	ctx := context.Background()

	deltas := []int64{10, -4, -20, 7, -1, 3, -100, 12}
	for _, d := range deltas {
		_, err := uc.AdjustStock(ctx, "p1", d)
		require.NoError(t, err)
	}

	sum, err := (&memEntryRepo{db}).SumByPart("p1")
	require.NoError(t, err)
	assert.Equal(t, db.parts["p1"].StockQuantity, sum,
		"Σ(libro) debe igualar el stock actual")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreatePart: alta con stock inicial dentro de la misma transacción.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePart_ConStockInicial(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db)

	resp, err := uc.CreatePart(context.Background(), dto.CreatePartRequest{
		Name:         "Oil Filter",
		PartType:     "engine",
		Brand:        "Yamaha",
		Price:        decimal.NewFromInt(100),
		InitialStock: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), resp.StockQuantity)
	sum, err := (&memEntryRepo{db}).SumByPart(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), sum, "el stock inicial entra como renglón del libro")
}

func TestCreatePart_SinStockInicial(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db)

	resp, err := uc.CreatePart(context.Background(), dto.CreatePartRequest{
		Name:  "Brake Pads",
		Price: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.StockQuantity)
	assert.Empty(t, db.entries, "sin stock inicial no hay renglón de libro")
}

func TestCreatePart_Invalido(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db)
	ctx := context.Background()

	_, err := uc.CreatePart(ctx, dto.CreatePartRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.CreatePart(ctx, dto.CreatePartRequest{Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.CreatePart(ctx, dto.CreatePartRequest{Name: "X", Price: decimal.NewFromInt(1), InitialStock: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

func TestCreatePart_NombreDuplicadoHaceRollback(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", 0)
	uc := newTestUseCase(db)

	_, err := uc.CreatePart(context.Background(), dto.CreatePartRequest{
		Name:         "Part p1", // mismo nombre que el sembrado
		Price:        decimal.NewFromInt(50),
		InitialStock: 9,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, db.parts, 1, "el alta fallida no deja rastro")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePart: edición de catálogo sin tocar stock.
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePart_NoTocaElStock(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", 8)
	uc := newTestUseCase(db)

	resp, err := uc.UpdatePart(context.Background(), "p1", dto.UpdatePartRequest{
		Name:  "Renamed",
		Price: decimal.NewFromInt(250),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", resp.Name)
	assert.Equal(t, int64(8), db.parts["p1"].StockQuantity, "el stock solo cambia vía ajustes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado de stock derivado en las respuestas.
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPart_EstadoDeStock(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "ok", 20)
	seedPart(t, db, "low", 2)
	seedPart(t, db, "out", 0)
	uc := newTestUseCase(db)
	ctx := context.Background()

	for id, want := range map[string]string{
		"ok":  "In Stock",
		"low": "Low Stock",
		"out": "Out of Stock",
	} {
		resp, err := uc.GetPart(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StockStatus, "part %s", id)
	}
}
