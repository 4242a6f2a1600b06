package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/linkreg/linkreg/internal/models"
	"github.com/linkreg/linkreg/pkg/metrics"
)

var (
	// ErrDuplicateCode is returned by Insert when the code is already taken.
	ErrDuplicateCode = errors.New("code already exists")
	// ErrNotFound is returned by RecordClick when no row matches the code.
	ErrNotFound = errors.New("link not found")
)

// uniqueViolation is the PostgreSQL error code for unique-constraint failures.
const uniqueViolation = "23505"

// LinkRepository is the sole writer of the links table.
type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Insert persists a new link with zero clicks. A duplicate code is reported
// as ErrDuplicateCode so the caller can distinguish collisions from outages.
func (r *LinkRepository) Insert(ctx context.Context, code, url string) error {
	defer observe("insert", time.Now())

	query := `INSERT INTO links (code, url) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, code, url); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		log.Printf("Error inserting link code=%s: %v", code, err)
		return err
	}
	return nil
}

// FindByCode returns the full link record, or (nil, nil) when absent.
func (r *LinkRepository) FindByCode(ctx context.Context, code string) (*models.Link, error) {
	defer observe("find", time.Now())

	query := `
        SELECT code, url, clicks, last_clicked, created_at
        FROM links
        WHERE code = $1
    `

	var link models.Link
	var lastClicked sql.NullTime
	row := r.db.QueryRowContext(ctx, query, code)
	if err := row.Scan(&link.Code, &link.URL, &link.Clicks, &lastClicked, &link.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found
		}
		log.Printf("Error finding link by code %s: %v", code, err)
		return nil, err
	}
	if lastClicked.Valid {
		link.LastClicked = &lastClicked.Time
	}
	return &link, nil
}

// List returns all links, newest first.
func (r *LinkRepository) List(ctx context.Context) ([]models.Link, error) {
	defer observe("list", time.Now())

	query := `
        SELECT code, url, clicks, last_clicked, created_at
        FROM links
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing links: %v", err)
		return nil, err
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var link models.Link
		var lastClicked sql.NullTime
		if err := rows.Scan(&link.Code, &link.URL, &link.Clicks, &lastClicked, &link.CreatedAt); err != nil {
			return nil, err
		}
		if lastClicked.Valid {
			link.LastClicked = &lastClicked.Time
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// Delete removes a link. It reports whether a row was actually deleted.
func (r *LinkRepository) Delete(ctx context.Context, code string) (bool, error) {
	defer observe("delete", time.Now())

	query := `DELETE FROM links WHERE code = $1`

	result, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		log.Printf("Error deleting code %s: %v", code, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// RecordClick bumps the click counter and last-clicked timestamp and returns
// the destination URL, all in one atomic statement. The store serializes
// concurrent increments, so no clicks are lost under concurrent redirects.
func (r *LinkRepository) RecordClick(ctx context.Context, code string) (string, error) {
	defer observe("record_click", time.Now())

	query := `
        UPDATE links
        SET clicks = clicks + 1, last_clicked = NOW()
        WHERE code = $1
        RETURNING url
    `

	var url string
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		log.Printf("Error recording click for code %s: %v", code, err)
		return "", err
	}
	return url, nil
}

// EnsureSchema creates the links table if it does not exist. Development
// convenience only; managed environments own the schema themselves.
func (r *LinkRepository) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS links (
            code         TEXT PRIMARY KEY,
            url          TEXT NOT NULL,
            clicks       BIGINT NOT NULL DEFAULT 0,
            last_clicked TIMESTAMPTZ,
            created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
        CREATE INDEX IF NOT EXISTS idx_links_created_at ON links(created_at);
    `
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func observe(operation string, start time.Time) {
	metrics.DatabaseQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
