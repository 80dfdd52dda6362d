package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"devportal/internal/domain/entity"
	"devportal/internal/domain/repository"
	"devportal/pkg/errors"
)

// Dashboard owns the in-memory snapshot of the product listing page. The
// row set is only ever mutated through the named transitions below, and
// every mutation swaps whole slices so readers never observe a partially
// updated set.
type Dashboard struct {
	productRepo repository.ProductRepository
	log         *zap.Logger

	mu       sync.Mutex
	rows     []*entity.Product
	loading  bool
	deleting map[string]bool
}

func NewDashboard(productRepo repository.ProductRepository, log *zap.Logger) *Dashboard {
	return &Dashboard{
		productRepo: productRepo,
		log:         log,
		loading:     true,
		deleting:    make(map[string]bool),
	}
}

// Refresh runs the listing loader once. Query failures are logged and
// degrade to an empty row set; they are never surfaced as a distinct
// error. A refresh that settles after ctx is cancelled must not apply
// its result.
func (uc *Dashboard) Refresh(ctx context.Context) error {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		uc.log.Error("Failed to load products", zap.Error(err))
		products = nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	uc.setRows(products)
	return nil
}

// Delete removes the row optimistically, issues the remote delete, and
// restores the exact pre-delete snapshot if the remote call fails. The
// per-row deleting indicator is cleared on every exit path.
func (uc *Dashboard) Delete(ctx context.Context, id string) error {
	snapshot, err := uc.beginDelete(id)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			uc.rollbackDelete(id, snapshot)
		}
	}()

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		uc.log.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		return err
	}

	committed = true
	uc.commitDelete(id)
	uc.log.Info("Product deleted", zap.String("id", id))
	return nil
}

// Rows returns a copy of the current row set plus the loading flag.
func (uc *Dashboard) Rows() ([]*entity.Product, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows := make([]*entity.Product, len(uc.rows))
	copy(rows, uc.rows)
	return rows, uc.loading
}

func (uc *Dashboard) IsDeleting(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.deleting[id]
}

// setRows replaces the whole row set and clears the loading flag.
func (uc *Dashboard) setRows(rows []*entity.Product) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rows = rows
	uc.loading = false
}

// beginDelete snapshots the row set, removes the row speculatively and
// marks it deleting. At most one delete may be in flight per row.
func (uc *Dashboard) beginDelete(id string) ([]*entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.deleting[id] {
		return nil, errors.Conflict("Delete already in progress for this product")
	}

	found := false
	remaining := make([]*entity.Product, 0, len(uc.rows))
	for _, row := range uc.rows {
		if row.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, row)
	}
	if !found {
		return nil, errors.NotFound("Product", nil)
	}

	snapshot := make([]*entity.Product, len(uc.rows))
	copy(snapshot, uc.rows)

	uc.rows = remaining
	uc.deleting[id] = true
	return snapshot, nil
}

// commitDelete makes the optimistic removal permanent.
func (uc *Dashboard) commitDelete(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.deleting, id)
}

// rollbackDelete restores the exact pre-delete snapshot.
func (uc *Dashboard) rollbackDelete(id string, snapshot []*entity.Product) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rows = snapshot
	delete(uc.deleting, id)
}
