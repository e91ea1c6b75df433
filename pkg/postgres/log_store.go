package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/madsmiley/mailbridge/pkg/mailer"
)

// DefaultLogsPerPage is the page size of the log listing.
const DefaultLogsPerPage = 50

// LogStore persists send log entries. The table is append-only except for
// retention pruning. It implements [mailer.LogStore].
type LogStore struct {
	pool *pgxpool.Pool
}

// NewLogStore creates a log store over the given pool.
func NewLogStore(pool *pgxpool.Pool) *LogStore {
	return &LogStore{pool: pool}
}

// Insert appends a log entry.
func (s *LogStore) Insert(ctx context.Context, entry mailer.LogEntry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO mailbridge_logs
			(id, template_slug, recipient, subject, status, error_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.TemplateSlug, entry.Recipient, entry.Subject,
		entry.Status, entry.ErrorMessage, entry.SentAt)
	return err
}

// List returns a page of log entries, newest first, plus the total count.
// Pages are 1-based; a non-positive perPage uses [DefaultLogsPerPage].
func (s *LogStore) List(ctx context.Context, page, perPage int) ([]mailer.LogEntry, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultLogsPerPage
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM mailbridge_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, template_slug, recipient, subject, status, error_message, sent_at
		FROM mailbridge_logs
		ORDER BY sent_at DESC, id
		LIMIT $1 OFFSET $2`,
		perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []mailer.LogEntry
	for rows.Next() {
		var e mailer.LogEntry
		if err := rows.Scan(
			&e.ID, &e.TemplateSlug, &e.Recipient, &e.Subject,
			&e.Status, &e.ErrorMessage, &e.SentAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// DeleteOlderThan removes entries sent before the cutoff and reports how many
// rows went away. Retention pruning calls this on a schedule.
func (s *LogStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM mailbridge_logs WHERE sent_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
