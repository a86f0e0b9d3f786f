package patterns

import (
	"context"

	"github.com/google/uuid"

	"github.com/echomedia/pricer/pkg/pagination"
)

// System defines the public contract for pattern domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Pattern], error)
	Find(ctx context.Context, id uuid.UUID) (*Pattern, error)
	Create(ctx context.Context, cmd CreateCommand) (*Pattern, error)

	// Corpus returns the full pattern store in reduced form for
	// similarity matching.
	Corpus(ctx context.Context) ([]CorpusEntry, error)
}
