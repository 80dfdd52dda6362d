package repository

import (
	"context"

	"devportal/internal/domain/entity"
)

// ProductRepository reads and deletes API product rows in the remote
// managed store. Creation and editing happen elsewhere; this surface is
// exactly what the dashboard consumes.
type ProductRepository interface {
	// List returns every product row, ordered by creation time
	// descending. Rows without a creation timestamp sort last.
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
