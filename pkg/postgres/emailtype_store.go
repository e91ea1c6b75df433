package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
)

// EmailTypeStore mirrors registered email type definitions to storage so the
// admin surface can list them. Rendering never reads these rows; the
// in-memory registry stays authoritative. It implements [emailtype.Store].
type EmailTypeStore struct {
	pool *pgxpool.Pool
}

// NewEmailTypeStore creates an email type store over the given pool.
func NewEmailTypeStore(pool *pgxpool.Pool) *EmailTypeStore {
	return &EmailTypeStore{pool: pool}
}

// EmailTypeRow is the stored snapshot of a definition. Polymorphic fields
// stay as raw JSON; display code formats them without reconstructing the
// registry's value types.
type EmailTypeRow struct {
	ID             int64           `json:"id"`
	TypeID         string          `json:"type_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Variables      json.RawMessage `json:"variables"`
	Plugin         string          `json:"plugin_name"`
	DefaultSubject json.RawMessage `json:"default_subject"`
	DefaultContent json.RawMessage `json:"default_content"`
	Languages      json.RawMessage `json:"languages"`
	Variations     json.RawMessage `json:"variations"`
	RegisteredAt   time.Time       `json:"registered_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// UpsertEmailType inserts or refreshes the snapshot row for a type id. The
// upsert keys on type_id, so re-running the registration sweep is idempotent.
func (s *EmailTypeStore) UpsertEmailType(ctx context.Context, id string, def emailtype.Definition) error {
	variables, err := json.Marshal(def.Variables)
	if err != nil {
		return err
	}
	languages, err := json.Marshal(def.Languages)
	if err != nil {
		return err
	}
	variations, err := json.Marshal(def.Variations)
	if err != nil {
		return err
	}

	subject, err := marshalValue(def.DefaultSubject)
	if err != nil {
		return err
	}
	content, err := marshalValue(def.DefaultContent)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO mailbridge_email_types
			(type_id, name, description, variables, plugin_name, default_subject, default_content, languages, variations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (type_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			variables = EXCLUDED.variables,
			plugin_name = EXCLUDED.plugin_name,
			default_subject = EXCLUDED.default_subject,
			default_content = EXCLUDED.default_content,
			languages = EXCLUDED.languages,
			variations = EXCLUDED.variations,
			updated_at = now()`,
		id, def.Name, def.Description, variables, def.Plugin, subject, content, languages, variations)
	return err
}

// marshalValue renders a default value to JSON, or NULL when unset.
func marshalValue(v emailtype.DefaultValue) (any, error) {
	if v == nil || v.IsZero() {
		return nil, nil
	}
	return json.Marshal(v)
}

// List returns all stored snapshots ordered by display name.
func (s *EmailTypeStore) List(ctx context.Context) ([]EmailTypeRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type_id, name, description, variables, plugin_name,
			COALESCE(default_subject, 'null'), COALESCE(default_content, 'null'),
			languages, variations, registered_at, updated_at
		FROM mailbridge_email_types
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []EmailTypeRow
	for rows.Next() {
		var r EmailTypeRow
		if err := rows.Scan(
			&r.ID, &r.TypeID, &r.Name, &r.Description, &r.Variables, &r.Plugin,
			&r.DefaultSubject, &r.DefaultContent, &r.Languages, &r.Variations,
			&r.RegisteredAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}
