package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/echomedia/pricer/pkg/pagination"
)

// System defines the public contract for catalog domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Entry], error)

	Find(ctx context.Context, id uuid.UUID) (*Entry, error)
	Create(ctx context.Context, cmd CreateCommand) (*Entry, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Resolve determines the price for a module at a complexity level.
	// It never fails: lookup misses and query errors fall through to
	// fixed default prices.
	Resolve(ctx context.Context, moduleName, level string, isStudent bool) float64
}
