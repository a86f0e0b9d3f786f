package quotations

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/echomedia/pricer/pkg/pagination"
)

// System defines the public contract for quotation domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Quotation], error)

	Find(ctx context.Context, id uuid.UUID) (*Quotation, error)
	Create(ctx context.Context, cmd CreateCommand) (*Quotation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, cmd UpdateStatusCommand) (*Quotation, error)

	// Document streams the archived quotation text from blob storage.
	// The caller must close the reader.
	Document(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)

	// ExportPDF renders the quotation as a PDF document.
	ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
}
