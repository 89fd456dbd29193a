package sales_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/inventory"
	"github.com/jrfmotorparts/pos-backend/internal/application/sales"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

const testStaffID = "staff-001"

type fixedThreshold struct{ v int64 }

func (f fixedThreshold) LowStockThreshold(_ context.Context) int64 { return f.v }

func newSaleUseCase(db *memDB, hooks *recordingHooks) *sales.CreateSaleUseCase {
	engine := inventory.NewUseCase(nil, &memPartRepo{db}, &memEntryRepo{db}, fixedThreshold{5})
	return sales.NewCreateSaleUseCase(
		&memSaleTxRunner{db},
		engine,
		&memPartRepo{db},
		&memSaleRepo{db},
		&memCustomerRepo{db},
		hooks,
	)
}

func seedPart(t *testing.T, db *memDB, id, name string, price string, stock int64) {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	require.NoError(t, (&memPartRepo{db}).Create(&entity.Part{
		ID: id, Name: name, Price: p, StockQuantity: stock,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz: vender 2 de 5 a 100 cada uno.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_Exitosa(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	hooks := &recordingHooks{}
	uc := newSaleUseCase(db, hooks)

	resp, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(200)),
		"total = %s, esperado 200", resp.TotalAmount)
	assert.Equal(t, testStaffID, resp.StaffID)
	assert.Equal(t, int64(3), db.parts["p1"].StockQuantity, "stock descontado")

	// Exactamente un renglón de libro con el delta de la venta
	sum, err := (&memEntryRepo{db}).SumByPart("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(-2), sum)
	assert.Len(t, db.entries, 1)

	// Hooks post-commit con la foto del stock resultante
	assert.Equal(t, 1, hooks.calls)
	require.Len(t, hooks.snapshots, 1)
	assert.Equal(t, int64(3), hooks.snapshots[0].Quantity)
}

func TestCreateSale_NumeroDeRecibo(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	uc := newSaleUseCase(db, &recordingHooks{})

	resp, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^RCP-\d{8}-[0-9A-F]{8}$`), resp.ReceiptNumber)
}

// Si la solicitud no trae precio, se congela el precio vigente del catálogo;
// un cambio de precio posterior no altera la línea ya vendida.
func TestCreateSale_PrecioCongelado(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	uc := newSaleUseCase(db, &recordingHooks{})
	ctx := context.Background()

	resp, err := uc.CreateSale(ctx, testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	db.parts["p1"].Price = decimal.NewFromInt(999)

	details, err := (&memSaleRepo{db}).GetDetailsBySaleID(resp.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.True(t, details[0].PriceAtSale.Equal(decimal.NewFromInt(100)),
		"price_at_sale es una foto histórica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente: rechazo sin rastro.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_StockInsuficiente(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	hooks := &recordingHooks{}
	uc := newSaleUseCase(db, hooks)

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 10}},
		PaymentMethod: entity.PaymentCash,
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(10), insufficient.Requested)
	assert.Equal(t, int64(5), insufficient.Available)

	// Ningún cambio aplicado
	assert.Equal(t, int64(5), db.parts["p1"].StockQuantity)
	assert.Empty(t, db.sales)
	assert.Empty(t, db.details)
	assert.Empty(t, db.entries)
	assert.Zero(t, hooks.calls, "los hooks no corren en ventas fallidas")
}

// Venta multilínea todo-o-nada: si la segunda línea no tiene stock, la primera
// tampoco se descuenta.
func TestCreateSale_MultilineaTodoONada(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	seedPart(t, db, "p2", "Brake Pads", "300.00", 1)
	uc := newSaleUseCase(db, &recordingHooks{})

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{PartID: "p1", Quantity: 2},
			{PartID: "p2", Quantity: 3},
		},
		PaymentMethod: entity.PaymentCash,
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "p2", insufficient.PartID)

	assert.Equal(t, int64(5), db.parts["p1"].StockQuantity, "la primera línea no se descuenta")
	assert.Equal(t, int64(1), db.parts["p2"].StockQuantity)
	assert.Empty(t, db.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de la solicitud.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_SinLineas(t *testing.T) {
	uc := newSaleUseCase(newMemDB(), &recordingHooks{})

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentCash,
	})
	var invalid *domain.InvalidSaleError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	uc := newSaleUseCase(db, &recordingHooks{})
	ctx := context.Background()

	for _, qty := range []int64{0, -3} {
		_, err := uc.CreateSale(ctx, testStaffID, dto.CreateSaleRequest{
			Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: qty}},
			PaymentMethod: entity.PaymentCash,
		})
		var invalid *domain.InvalidSaleError
		assert.ErrorAs(t, err, &invalid, "cantidad %d", qty)
	}
}

func TestCreateSale_MetodoPagoDesconocido(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	uc := newSaleUseCase(db, &recordingHooks{})

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
		PaymentMethod: "cheque",
	})
	var invalid *domain.InvalidSaleError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreateSale_SinStaff(t *testing.T) {
	uc := newSaleUseCase(newMemDB(), &recordingHooks{})

	_, err := uc.CreateSale(context.Background(), "", dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCreateSale_RepuestoInexistente(t *testing.T) {
	uc := newSaleUseCase(newMemDB(), &recordingHooks{})

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "no-existe", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	uc := newSaleUseCase(db, &recordingHooks{})

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
		CustomerID:    "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_ClienteRegistrado(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	require.NoError(t, (&memCustomerRepo{db}).Create(&entity.Customer{
		ID: "c1", Name: "Juan Dela Cruz", IsActive: true,
	}))
	uc := newSaleUseCase(db, &recordingHooks{})

	resp, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
		PaymentMethod: entity.PaymentEWallet,
		CustomerID:    "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.CustomerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos ventas sobre la última unidad.
// ──────────────────────────────────────────────────────────────────────────────

// Dos ventas concurrentes del mismo repuesto con stock 1: exactamente una
// confirma y la otra recibe stock insuficiente. El bloqueo de fila garantiza
// que la verificación lee el stock ya descontado por la transacción ganadora.
func TestCreateSale_CarreraPorUltimaUnidad(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Rear Tire", "1200.00", 1)
	uc := newSaleUseCase(db, &recordingHooks{})

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
				Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 1}},
				PaymentMethod: entity.PaymentCash,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var confirmed, rejected int
	for err := range errs {
		if err == nil {
			confirmed++
			continue
		}
		var insufficient *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		rejected++
	}

	assert.Equal(t, 1, confirmed, "exactamente una venta confirma")
	assert.Equal(t, 1, rejected, "la otra recibe stock insuficiente")
	assert.Equal(t, int64(0), db.parts["p1"].StockQuantity)
	assert.Len(t, db.sales, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo de infraestructura a mitad de transacción.
// ──────────────────────────────────────────────────────────────────────────────

// saleRepo que falla al insertar la línea, simulando un error de BD después de
// haber insertado la cabecera.
type failingDetailSaleRepo struct{ *memSaleRepo }

func (r *failingDetailSaleRepo) CreateDetail(_ *entity.SaleDetail) error {
	return errors.New("disco lleno")
}

type failingDetailTxRunner struct{ db *memDB }

func (t *failingDetailTxRunner) RunSale(ctx context.Context, fn func(
	partRepo repository.PartRepository,
	saleRepo repository.SaleRepository,
	entryRepo repository.StockEntryRepository,
) error) error {
	snap := t.db.snapshot()
	err := fn(&memPartRepo{t.db}, &failingDetailSaleRepo{&memSaleRepo{t.db}}, &memEntryRepo{t.db})
	if err != nil {
		t.db.restore(snap)
	}
	return err
}

func TestCreateSale_FalloDeInfraestructuraRevierteTodo(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	hooks := &recordingHooks{}
	engine := inventory.NewUseCase(nil, &memPartRepo{db}, &memEntryRepo{db}, fixedThreshold{5})
	uc := sales.NewCreateSaleUseCase(
		&failingDetailTxRunner{db},
		engine,
		&memPartRepo{db},
		&memSaleRepo{db},
		&memCustomerRepo{db},
		hooks,
	)

	_, err := uc.CreateSale(context.Background(), testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
	})

	var aborted *domain.TransactionAbortedError
	require.ErrorAs(t, err, &aborted, "fallos de infraestructura se envuelven como transacción abortada")

	assert.Equal(t, int64(5), db.parts["p1"].StockQuantity)
	assert.Empty(t, db.sales)
	assert.Empty(t, db.details)
	assert.Empty(t, db.entries)
	assert.Zero(t, hooks.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteSale: elimina cabecera y líneas, sin reponer stock.
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteSale_NoReponeStock(t *testing.T) {
	db := newMemDB()
	seedPart(t, db, "p1", "Oil Filter", "100.00", 5)
	uc := newSaleUseCase(db, &recordingHooks{})
	ctx := context.Background()

	resp, err := uc.CreateSale(ctx, testStaffID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{PartID: "p1", Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteSale(ctx, resp.ID))

	assert.Empty(t, db.sales)
	assert.Empty(t, db.details, "las líneas no quedan huérfanas")
	assert.Equal(t, int64(3), db.parts["p1"].StockQuantity,
		"anular la venta no repone stock")
}
