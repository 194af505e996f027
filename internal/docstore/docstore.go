// Package docstore provides generic access to JSONB-backed collections.
// Documents are opaque JSON objects; the row id is merged into the
// document as "id" on the way out and stripped on the way in.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, collection string, doc []byte) (string, error) {
	if err := validCollection(collection); err != nil {
		return "", err
	}
	var id string
	err := s.DB.QueryRow(ctx, fmt.Sprintf(
		"INSERT INTO %s (doc) VALUES ($1::jsonb - 'id') RETURNING id", collection,
	), doc).Scan(&id)
	if err != nil {
		return "", writeErr(err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	var doc []byte
	err := s.DB.QueryRow(ctx, fmt.Sprintf(
		"SELECT doc || jsonb_build_object('id', id::text) FROM %s WHERE id = $1", collection,
	), id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) List(ctx context.Context, collection string) ([][]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(ctx, fmt.Sprintf(
		"SELECT doc || jsonb_build_object('id', id::text) FROM %s ORDER BY created_at, id", collection,
	))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocs(rows)
}

func (s *Store) ListPage(ctx context.Context, collection string, limit, offset int) ([][]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(ctx, fmt.Sprintf(
		"SELECT doc || jsonb_build_object('id', id::text) FROM %s ORDER BY created_at, id LIMIT $1 OFFSET $2", collection,
	), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocs(rows)
}

func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if err := validCollection(collection); err != nil {
		return 0, err
	}
	var count int
	if err := s.DB.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(1) FROM %s", collection)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) FindByField(ctx context.Context, collection, field, value string) ([][]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if err := validField(field); err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(ctx, fmt.Sprintf(
		"SELECT doc || jsonb_build_object('id', id::text) FROM %s WHERE doc->>'%s' = $1 ORDER BY created_at, id", collection, field,
	), value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocs(rows)
}

func (s *Store) FindOneByField(ctx context.Context, collection, field, value string) ([]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if err := validField(field); err != nil {
		return nil, err
	}
	var doc []byte
	err := s.DB.QueryRow(ctx, fmt.Sprintf(
		"SELECT doc || jsonb_build_object('id', id::text) FROM %s WHERE doc->>'%s' = $1 ORDER BY created_at, id LIMIT 1", collection, field,
	), value).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Update replaces the whole document.
func (s *Store) Update(ctx context.Context, collection, id string, doc []byte) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	cmd, err := s.DB.Exec(ctx, fmt.Sprintf(
		"UPDATE %s SET doc = $2::jsonb - 'id', updated_at = now() WHERE id = $1", collection,
	), id, doc)
	if err != nil {
		return writeErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MergePatch overlays the given fields onto the stored document,
// leaving keys absent from the patch untouched.
func (s *Store) MergePatch(ctx context.Context, collection, id string, patch []byte) ([]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	var doc []byte
	err := s.DB.QueryRow(ctx, fmt.Sprintf(
		"UPDATE %s SET doc = doc || ($2::jsonb - 'id'), updated_at = now() WHERE id = $1 RETURNING doc || jsonb_build_object('id', id::text)", collection,
	), id, patch).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, writeErr(err)
	}
	return doc, nil
}

// UpsertByField updates the first document whose reference field matches,
// or inserts a new one. Re-running with the same payload leaves a single
// document in place.
func (s *Store) UpsertByField(ctx context.Context, collection, field, value string, doc []byte) ([]byte, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if err := validField(field); err != nil {
		return nil, err
	}
	var stored []byte
	err := s.DB.QueryRow(ctx, fmt.Sprintf(`
    UPDATE %[1]s SET doc = $2::jsonb - 'id', updated_at = now()
    WHERE id = (SELECT id FROM %[1]s WHERE doc->>'%[2]s' = $1 ORDER BY created_at, id LIMIT 1)
    RETURNING doc || jsonb_build_object('id', id::text)
  `, collection, field), value, doc).Scan(&stored)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	err = s.DB.QueryRow(ctx, fmt.Sprintf(
		"INSERT INTO %s (doc) VALUES ($1::jsonb - 'id') RETURNING doc || jsonb_build_object('id', id::text)", collection,
	), doc).Scan(&stored)
	if err != nil {
		return nil, writeErr(err)
	}
	return stored, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	cmd, err := s.DB.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", collection), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByField(ctx context.Context, collection, field, value string) (int64, error) {
	if err := validCollection(collection); err != nil {
		return 0, err
	}
	if err := validField(field); err != nil {
		return 0, err
	}
	cmd, err := s.DB.Exec(ctx, fmt.Sprintf(
		"DELETE FROM %s WHERE doc->>'%s' = $1", collection, field,
	), value)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// writeErr maps a unique-constraint violation to ErrConflict so callers
// can answer 409 without knowing Postgres error codes.
func writeErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func collectDocs(rows pgx.Rows) ([][]byte, error) {
	var out [][]byte
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}
