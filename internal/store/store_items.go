package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Upsert inserts or wholesale-replaces the record stored under (name, style).
// Re-staging the same key is never an error; the latest write wins.
func (s *Store) Upsert(ctx context.Context, record Record) error {
	if err := record.validate(); err != nil {
		return err
	}

	terms := record.Terms
	if terms == nil {
		terms = []string{}
	}
	termsJSON, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("marshal terms: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO icons (
            name, style, body, width, height, view_box,
            unicode, terms_json, search_blob, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (name, style) DO UPDATE SET
            body = excluded.body,
            width = excluded.width,
            height = excluded.height,
            view_box = excluded.view_box,
            unicode = excluded.unicode,
            terms_json = excluded.terms_json,
            search_blob = excluded.search_blob,
            updated_at = excluded.updated_at`,
		record.Name,
		record.Style,
		record.Body,
		record.Width,
		record.Height,
		record.ViewBox,
		record.Unicode,
		string(termsJSON),
		record.searchBlob(),
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert icon %s: %w", record.Key(), err)
	}
	return nil
}

// ListStyles returns the distinct styles with at least one staged record,
// sorted alphabetically.
func (s *Store) ListStyles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT style FROM icons ORDER BY style")
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}
	defer rows.Close()

	var styles []string
	for rows.Next() {
		var style string
		if err := rows.Scan(&style); err != nil {
			return nil, fmt.Errorf("scan style: %w", err)
		}
		styles = append(styles, style)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate styles: %w", err)
	}
	return styles, nil
}

// ListByStyle returns every record staged for a style, ordered by name.
func (s *Store) ListByStyle(ctx context.Context, style string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+" FROM icons WHERE style = ? ORDER BY name", style)
	if err != nil {
		return nil, fmt.Errorf("list by style: %w", err)
	}
	return scanRecords(rows)
}

// Search returns records whose name or any search term contains the given
// substring, case-insensitively. When styles are supplied the match is
// restricted to them. Results are ordered by (name, style).
func (s *Store) Search(ctx context.Context, substring string, styles ...string) ([]Record, error) {
	needle := strings.ToLower(strings.TrimSpace(substring))
	if needle == "" {
		return nil, nil
	}

	query := selectColumns + " FROM icons WHERE instr(search_blob, ?) > 0"
	args := []any{needle}
	if len(styles) > 0 {
		placeholders := strings.Repeat("?, ", len(styles))
		query += " AND style IN (" + placeholders[:len(placeholders)-2] + ")"
		for _, style := range styles {
			args = append(args, style)
		}
	}
	query += " ORDER BY name, style"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search icons: %w", err)
	}
	return scanRecords(rows)
}

// Count returns the total number of staged records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM icons").Scan(&count); err != nil {
		return 0, fmt.Errorf("count icons: %w", err)
	}
	return count, nil
}

const selectColumns = "SELECT name, style, body, width, height, view_box, unicode, terms_json"

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var termsJSON string
		if err := rows.Scan(
			&record.Name,
			&record.Style,
			&record.Body,
			&record.Width,
			&record.Height,
			&record.ViewBox,
			&record.Unicode,
			&termsJSON,
		); err != nil {
			return nil, fmt.Errorf("scan icon: %w", err)
		}
		if err := json.Unmarshal([]byte(termsJSON), &record.Terms); err != nil {
			return nil, fmt.Errorf("decode terms for %s: %w", record.Key(), err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate icons: %w", err)
	}
	return records, nil
}
