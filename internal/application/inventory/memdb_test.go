package inventory_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El txRunner toma un snapshot antes de fn y lo restaura si
// fn falla, emulando el rollback: así los tests pueden afirmar "ningún cambio
// fue aplicado" tras un error.
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	mu      sync.Mutex
	parts   map[string]*entity.Part
	entries []*entity.StockEntry
}

func newMemDB() *memDB {
	return &memDB{parts: map[string]*entity.Part{}}
}

func (db *memDB) snapshot() *memDB {
	snap := newMemDB()
	for id, p := range db.parts {
		cp := *p
		snap.parts[id] = &cp
	}
	for _, e := range db.entries {
		ce := *e
		snap.entries = append(snap.entries, &ce)
	}
	return snap
}

func (db *memDB) restore(snap *memDB) {
	db.parts = snap.parts
	db.entries = snap.entries
}

type memPartRepo struct{ db *memDB }

var _ repository.PartRepository = (*memPartRepo)(nil)

func (r *memPartRepo) Create(part *entity.Part) error {
	for _, p := range r.db.parts {
		if p.Name == part.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *part
	r.db.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Update(part *entity.Part) error {
	if _, ok := r.db.parts[part.ID]; !ok {
		return domain.ErrNotFound
	}
	stock := r.db.parts[part.ID].StockQuantity
	cp := *part
	cp.StockQuantity = stock // Update jamás toca el stock
	r.db.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Delete(id string) error {
	delete(r.db.parts, id)
	return nil
}

func (r *memPartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.db.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetForUpdate(id string) (*entity.Part, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.GetByID(id)
}

func (r *memPartRepo) UpdateStock(id string, quantity int64) error {
	p, ok := r.db.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *memPartRepo) List(limit, offset int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.db.parts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPartRepo) Count() (int64, error) {
	return int64(len(r.db.parts)), nil
}

type memEntryRepo struct{ db *memDB }

var _ repository.StockEntryRepository = (*memEntryRepo)(nil)

func (r *memEntryRepo) Append(entry *entity.StockEntry) error {
	ce := *entry
	r.db.entries = append(r.db.entries, &ce)
	return nil
}

func (r *memEntryRepo) ListByPart(partID string, limit, offset int) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for i := len(r.db.entries) - 1; i >= 0; i-- {
		if r.db.entries[i].PartID == partID {
			ce := *r.db.entries[i]
			out = append(out, &ce)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
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

type memTxRunner struct{ db *memDB }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	partRepo repository.PartRepository,
	entryRepo repository.StockEntryRepository,
) error) error {
	snap := t.db.snapshot()
	if err := fn(&memPartRepo{t.db}, &memEntryRepo{t.db}); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}

// fixedThreshold umbral constante para los tests.
type fixedThreshold struct{ v int64 }

func (f fixedThreshold) LowStockThreshold(_ context.Context) int64 { return f.v }
