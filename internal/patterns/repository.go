package patterns

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/echomedia/pricer/pkg/pagination"
	"github.com/echomedia/pricer/pkg/query"
	"github.com/echomedia/pricer/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a pattern repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "patterns"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[Pattern], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ProjectTitle", "ProjectDescription")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count patterns: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	patterns, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPattern)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}

	result := pagination.NewPageResult(patterns, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Pattern, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPattern)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Pattern, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	modules, err := json.Marshal(cmd.Modules)
	if err != nil {
		return nil, fmt.Errorf("encode modules: %w", err)
	}

	q := `
		INSERT INTO project_patterns(project_title, project_description, modules_json, total_price, keywords, is_student)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, project_title, project_description, modules_json, total_price, keywords, is_student, created_at`

	args := []any{
		cmd.ProjectTitle,
		cmd.ProjectDescription,
		modules,
		cmd.TotalPrice,
		joinKeywords(cmd.Keywords),
		cmd.IsStudent,
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Pattern, error) {
		return repository.QueryOne(ctx, tx, q, args, scanPattern)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("pattern created", "id", p.ID, "title", p.ProjectTitle)
	return &p, nil
}

func (r *repo) Corpus(ctx context.Context) ([]CorpusEntry, error) {
	q := `
		SELECT id, project_title, keywords
		FROM project_patterns
		ORDER BY created_at DESC`

	entries, err := repository.QueryMany(ctx, r.db, q, nil, scanCorpusEntry)
	if err != nil {
		return nil, fmt.Errorf("query pattern corpus: %w", err)
	}

	return entries, nil
}

func scanCorpusEntry(s repository.Scanner) (CorpusEntry, error) {
	var (
		e        CorpusEntry
		keywords string
	)

	if err := s.Scan(&e.ID, &e.ProjectTitle, &keywords); err != nil {
		return e, err
	}

	e.Keywords = splitKeywords(keywords)
	return e, nil
}
