package sales_test

import (
	"context"
	"sync"

	"github.com/jrfmotorparts/pos-backend/internal/application/sales"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. RunSale toma un snapshot antes de fn y lo restaura ante
// cualquier error: emula el rollback para que los tests puedan afirmar que una
// venta fallida no deja rastro.
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	mu        sync.Mutex // RunSale serializa transacciones, como el FOR UPDATE en Postgres
	parts     map[string]*entity.Part
	entries   []*entity.StockEntry
	sales     map[string]*entity.Sale
	details   []*entity.SaleDetail
	customers map[string]*entity.Customer
}

func newMemDB() *memDB {
	return &memDB{
		parts:     map[string]*entity.Part{},
		sales:     map[string]*entity.Sale{},
		customers: map[string]*entity.Customer{},
	}
}

func (db *memDB) snapshot() *memDB {
	snap := newMemDB()
	for id, p := range db.parts {
		cp := *p
		snap.parts[id] = &cp
	}
	for id, s := range db.sales {
		cs := *s
		snap.sales[id] = &cs
	}
	for id, c := range db.customers {
		cc := *c
		snap.customers[id] = &cc
	}
	for _, e := range db.entries {
		ce := *e
		snap.entries = append(snap.entries, &ce)
	}
	for _, d := range db.details {
		cd := *d
		snap.details = append(snap.details, &cd)
	}
	return snap
}

func (db *memDB) restore(snap *memDB) {
	db.parts = snap.parts
	db.entries = snap.entries
	db.sales = snap.sales
	db.details = snap.details
	db.customers = snap.customers
}

type memPartRepo struct{ db *memDB }

var _ repository.PartRepository = (*memPartRepo)(nil)

func (r *memPartRepo) Create(part *entity.Part) error {
	cp := *part
	r.db.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Update(part *entity.Part) error {
	cp := *part
	r.db.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Delete(id string) error { delete(r.db.parts, id); return nil }

func (r *memPartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.db.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetForUpdate(id string) (*entity.Part, error) { return r.GetByID(id) }

func (r *memPartRepo) UpdateStock(id string, quantity int64) error {
	p, ok := r.db.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *memPartRepo) List(limit, offset int) ([]*entity.Part, error) { return nil, nil }
func (r *memPartRepo) Count() (int64, error)                          { return int64(len(r.db.parts)), nil }

type memEntryRepo struct{ db *memDB }

var _ repository.StockEntryRepository = (*memEntryRepo)(nil)

func (r *memEntryRepo) Append(entry *entity.StockEntry) error {
	ce := *entry
	r.db.entries = append(r.db.entries, &ce)
	return nil
}

func (r *memEntryRepo) ListByPart(partID string, limit, offset int) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.db.entries {
		if e.PartID == partID {
			ce := *e
			out = append(out, &ce)
		}
	}
	return out, nil
}

func (r *memEntryRepo) SumByPart(partID string) (int64, error) {
	var sum int64
	for _, e := range r.db.entries {
		if e.PartID == partID {
			sum += e.Quantity
		}
	}
	return sum, nil
}

type memSaleRepo struct{ db *memDB }

var _ repository.SaleRepository = (*memSaleRepo)(nil)

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	cs := *sale
	r.db.sales[sale.ID] = &cs
	return nil
}

func (r *memSaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	cd := *detail
	r.db.details = append(r.db.details, &cd)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.db.sales[id]
	if !ok {
		return nil, nil
	}
	cs := *s
	return &cs, nil
}

func (r *memSaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	var out []*entity.SaleDetail
	for _, d := range r.db.details {
		if d.SaleID == saleID {
			cd := *d
			out = append(out, &cd)
		}
	}
	return out, nil
}

func (r *memSaleRepo) Delete(id string) error {
	delete(r.db.sales, id)
	kept := r.db.details[:0]
	for _, d := range r.db.details {
		if d.SaleID != id {
			kept = append(kept, d)
		}
	}
	r.db.details = kept
	return nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.db.sales {
		cs := *s
		out = append(out, &cs)
	}
	return out, nil
}

func (r *memSaleRepo) Count() (int64, error) { return int64(len(r.db.sales)), nil }

type memCustomerRepo struct{ db *memDB }

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cc := *c
	r.db.customers[c.ID] = &cc
	return nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	cc := *c
	r.db.customers[c.ID] = &cc
	return nil
}

func (r *memCustomerRepo) Deactivate(id string) error {
	if c, ok := r.db.customers[id]; ok {
		c.IsActive = false
	}
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.db.customers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *memCustomerRepo) FindByEmail(email string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }

type memSaleTxRunner struct{ db *memDB }

func (t *memSaleTxRunner) RunSale(ctx context.Context, fn func(
	partRepo repository.PartRepository,
	saleRepo repository.SaleRepository,
	entryRepo repository.StockEntryRepository,
) error) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	snap := t.db.snapshot()
	if err := fn(&memPartRepo{t.db}, &memSaleRepo{t.db}, &memEntryRepo{t.db}); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}

// recordingHooks captura las invocaciones post-commit para aserciones.
type recordingHooks struct {
	calls     int
	lastSale  *entity.Sale
	snapshots []sales.PartSnapshot
}

func (h *recordingHooks) AfterSale(_ context.Context, sale *entity.Sale, snapshots []sales.PartSnapshot) {
	h.calls++
	h.lastSale = sale
	h.snapshots = snapshots
}
