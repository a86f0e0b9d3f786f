package quotations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/echomedia/pricer/pkg/pagination"
	"github.com/echomedia/pricer/pkg/query"
	"github.com/echomedia/pricer/pkg/repository"
	"github.com/echomedia/pricer/pkg/storage"
)

type repo struct {
	db         *sql.DB
	store      storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a quotation repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		store:      store,
		logger:     logger.With("system", "quotations"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Quotation], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ProjectTitle", "QuotationText")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count quotations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	quotations, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanQuotation)
	if err != nil {
		return nil, fmt.Errorf("query quotations: %w", err)
	}

	result := pagination.NewPageResult(quotations, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	quotation, err := repository.QueryOne(ctx, r.db, q, args, scanQuotation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &quotation, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Quotation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	modules, err := json.Marshal(cmd.Modules)
	if err != nil {
		return nil, fmt.Errorf("encode modules: %w", err)
	}

	q := `
		INSERT INTO quotations(project_title, modules_json, total_price, quotation_text, is_student, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, project_title, modules_json, total_price, quotation_text, is_student, status, created_at`

	args := []any{
		cmd.ProjectTitle,
		modules,
		cmd.TotalPrice,
		cmd.QuotationText,
		cmd.IsStudent,
		StatusDraft,
	}

	quotation, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Quotation, error) {
		return repository.QueryOne(ctx, tx, q, args, scanQuotation)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.archive(ctx, &quotation)

	r.logger.Info("quotation created", "id", quotation.ID, "title", quotation.ProjectTitle)
	return &quotation, nil
}

// archive persists the rendered quotation text to blob storage. Archive
// failures are logged but never fail the save; the text also lives in the
// quotations table.
func (r *repo) archive(ctx context.Context, q *Quotation) {
	key := documentKey(q)

	err := r.store.Upload(ctx, key, strings.NewReader(q.QuotationText), "text/plain; charset=utf-8")
	if err != nil {
		r.logger.Warn("quotation archive failed", "id", q.ID, "key", key, "error", err)
		return
	}

	r.logger.Info("quotation archived", "id", q.ID, "key", key)
}

func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, cmd UpdateStatusCommand) (*Quotation, error) {
	if _, err := ParseStatus(string(cmd.Status)); err != nil {
		return nil, err
	}

	q := `
		UPDATE quotations SET status = $1
		WHERE id = $2
		RETURNING id, project_title, modules_json, total_price, quotation_text, is_student, status, created_at`

	quotation, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Quotation, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Status, id}, scanQuotation)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("quotation status updated", "id", quotation.ID, "status", quotation.Status)
	return &quotation, nil
}

func (r *repo) Document(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	quotation, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	reader, err := r.store.Download(ctx, documentKey(quotation))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("download quotation document: %w", err)
	}

	return reader, nil
}

func (r *repo) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	quotation, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := renderPDF(quotation)
	if err != nil {
		return nil, fmt.Errorf("render quotation pdf: %w", err)
	}

	return data, nil
}
