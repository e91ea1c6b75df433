package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/madsmiley/mailbridge/pkg/templates"
)

// ErrInvalidTemplate rejects writes that miss the required fields.
var ErrInvalidTemplate = errors.New("postgres: template requires name, slug, and content")

// TemplateStore persists stored templates and serves the resolver's tier
// lookups. It implements [templates.Finder].
type TemplateStore struct {
	pool *pgxpool.Pool
}

// NewTemplateStore creates a template store over the given pool.
func NewTemplateStore(pool *pgxpool.Pool) *TemplateStore {
	return &TemplateStore{pool: pool}
}

const templateColumns = `id, template_name, template_slug, subject, content, language, variation, plugin_name, status, created_at, updated_at`

func scanTemplate(row pgx.Row) (*templates.Template, error) {
	var t templates.Template
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Subject, &t.Content,
		&t.Language, &t.Variation, &t.Plugin, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, templates.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindActive returns the active row for (slug, language, variation).
func (s *TemplateStore) FindActive(ctx context.Context, slug, language, variation string) (*templates.Template, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM mailbridge_templates
		WHERE template_slug = $1 AND language = $2 AND variation = $3 AND status = $4
		LIMIT 1`,
		slug, language, variation, templates.StatusActive)
	return scanTemplate(row)
}

// FindActiveAnyLanguage returns an active row for (slug, variation) in any
// language. Ordering by id keeps the pick stable when several languages
// qualify.
func (s *TemplateStore) FindActiveAnyLanguage(ctx context.Context, slug, variation string) (*templates.Template, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM mailbridge_templates
		WHERE template_slug = $1 AND variation = $2 AND status = $3
		ORDER BY id
		LIMIT 1`,
		slug, variation, templates.StatusActive)
	return scanTemplate(row)
}

// Get returns the row with the given id.
func (s *TemplateStore) Get(ctx context.Context, id int64) (*templates.Template, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM mailbridge_templates
		WHERE id = $1`,
		id)
	return scanTemplate(row)
}

// Create inserts a new template and fills the generated id and timestamps.
// An empty status defaults to active.
func (s *TemplateStore) Create(ctx context.Context, t *templates.Template) error {
	if t.Name == "" || t.Slug == "" || t.Content == "" {
		return ErrInvalidTemplate
	}
	if t.Status == "" {
		t.Status = templates.StatusActive
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO mailbridge_templates
			(template_name, template_slug, subject, content, language, variation, plugin_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		t.Name, t.Slug, t.Subject, t.Content, t.Language, t.Variation, t.Plugin, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update rewrites the row with t.ID and refreshes updated_at.
func (s *TemplateStore) Update(ctx context.Context, t *templates.Template) error {
	if t.Name == "" || t.Slug == "" || t.Content == "" {
		return ErrInvalidTemplate
	}

	err := s.pool.QueryRow(ctx, `
		UPDATE mailbridge_templates
		SET template_name = $2, template_slug = $3, subject = $4, content = $5,
			language = $6, variation = $7, plugin_name = $8, status = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		t.ID, t.Name, t.Slug, t.Subject, t.Content, t.Language, t.Variation, t.Plugin, t.Status,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return templates.ErrNotFound
	}
	return err
}

// Delete removes the row with the given id.
func (s *TemplateStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM mailbridge_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return templates.ErrNotFound
	}
	return nil
}

// List returns a page of templates, newest first, plus the total row count
// for pagination. Pages are 1-based; perPage caps at 100.
func (s *TemplateStore) List(ctx context.Context, page, perPage int) ([]templates.Template, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM mailbridge_templates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM mailbridge_templates
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`,
		perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []templates.Template
	for rows.Next() {
		var t templates.Template
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Slug, &t.Subject, &t.Content,
			&t.Language, &t.Variation, &t.Plugin, &t.Status,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, t)
	}
	return list, total, rows.Err()
}
