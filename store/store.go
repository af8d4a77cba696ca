// SPDX-License-Identifier: MIT

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/heavyedge/profile"
)

// Store is an open profile dataset file. It implements profile.Source and
// profile.LengthSource.
type Store struct {
	db   *sql.DB
	path string

	id   string
	name string
	m    int
	res  float64
	n    int
	x    []float64
}

var (
	_ profile.Source       = (*Store)(nil)
	_ profile.LengthSource = (*Store)(nil)
)

// Create makes a new, empty dataset file of row width m sampled at
// resolution, identified by a fresh UUID.
//
// Errors:
//   - ErrExists                     — path already exists.
//   - profile.ErrInvalidWidth       — m < 1.
//   - profile.ErrInvalidResolution  — resolution not finite and > 0.
func Create(path string, m int, resolution float64, name string) (*Store, error) {
	if m < 1 {
		return nil, profile.ErrInvalidWidth
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, profile.ErrInvalidResolution
	}
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrExists, path)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	_, err = db.Exec(`INSERT INTO dataset (id, name, m, resolution) VALUES (?, ?, ?, ?)`, id, name, m, resolution)
	if err != nil {
		db.Close()

		return nil, fmt.Errorf("store: create dataset: %w", err)
	}

	return &Store{
		db:   db,
		path: path,
		id:   id,
		name: name,
		m:    m,
		res:  resolution,
		x:    profile.Grid(m, resolution),
	}, nil
}

// Open opens an existing dataset file.
//
// Errors:
//   - ErrNotFound — path does not exist.
//   - ErrSchema   — the file holds no dataset description.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("store: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, path: path}
	err = db.QueryRow(`SELECT id, name, m, resolution FROM dataset LIMIT 1`).Scan(&s.id, &s.name, &s.m, &s.res)
	if err != nil {
		db.Close()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrSchema, path)
		}

		return nil, fmt.Errorf("store: read dataset: %w", err)
	}
	if err = db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&s.n); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: count profiles: %w", err)
	}
	s.x = profile.Grid(s.m, s.res)

	return s, nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// one connection keeps the pragmas below in effect
	db.SetMaxOpenConns(1)
	for _, p := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err = db.Exec(p); err != nil {
			db.Close()

			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}
	if err = migrateUp(db); err != nil {
		db.Close()

		return nil, err
	}

	return db, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the file the store was opened from.
func (s *Store) Path() string { return s.path }

// ID returns the dataset UUID.
func (s *Store) ID() string { return s.id }

// Name returns the dataset name.
func (s *Store) Name() string { return s.name }

// Len returns the number of profiles.
func (s *Store) Len() int { return s.n }

// X returns the spatial grid x[i] = i/resolution.
func (s *Store) X() []float64 { return s.x }

// Shape returns (N, M).
func (s *Store) Shape() (int, int) { return s.n, s.m }

// Resolution returns samples per unit length.
func (s *Store) Resolution() float64 { return s.res }

// Append writes profiles in one transaction. Every row must have M samples
// and a valid length in [1, M]; ls and names must match ys in length.
func (s *Store) Append(ys [][]float64, ls []int, names []string) error {
	b := profile.Batch{Ys: ys, Ls: ls, Names: names}
	if err := b.Validate(s.m); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.Prepare(`INSERT INTO profiles (idx, name, len, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, y := range ys {
		if _, err = stmt.Exec(s.n+i, names[i], ls[i], encodeRow(y)); err != nil {
			return fmt.Errorf("store: insert profile %d: %w", s.n+i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	s.n += len(ys)

	return nil
}

// AppendBatch appends every row of b. Its signature fits the callbacks of
// profile.Batches and the edge transforms.
func (s *Store) AppendBatch(b profile.Batch) error {
	return s.Append(b.Ys, b.Ls, b.Names)
}

// Slice reads profiles [start, end) in index order; end is clamped to N.
// The returned rows are freshly allocated.
func (s *Store) Slice(start, end int) (profile.Batch, error) {
	start, end, err := profile.ClampRange(start, end, s.n)
	if err != nil {
		return profile.Batch{}, err
	}

	rows, err := s.db.Query(`SELECT idx, name, len, data FROM profiles WHERE idx >= ? AND idx < ? ORDER BY idx`, start, end)
	if err != nil {
		return profile.Batch{}, fmt.Errorf("store: query profiles: %w", err)
	}
	defer rows.Close()

	k := end - start
	b := profile.Batch{
		Ys:    make([][]float64, 0, k),
		Ls:    make([]int, 0, k),
		Names: make([]string, 0, k),
	}
	for rows.Next() {
		var (
			idx  int
			name string
			l    int
			blob []byte
		)
		if err = rows.Scan(&idx, &name, &l, &blob); err != nil {
			return profile.Batch{}, fmt.Errorf("store: scan profile: %w", err)
		}
		if idx != start+b.Len() {
			return profile.Batch{}, fmt.Errorf("%w: expected index %d, found %d", ErrCorrupt, start+b.Len(), idx)
		}
		y := make([]float64, s.m)
		if err = decodeRow(y, blob); err != nil {
			return profile.Batch{}, fmt.Errorf("profile %d: %w", idx, err)
		}
		b.Ys = append(b.Ys, y)
		b.Ls = append(b.Ls, l)
		b.Names = append(b.Names, name)
	}
	if err = rows.Err(); err != nil {
		return profile.Batch{}, fmt.Errorf("store: read profiles: %w", err)
	}
	if b.Len() != k {
		return profile.Batch{}, fmt.Errorf("%w: read %d profiles, want %d", ErrCorrupt, b.Len(), k)
	}

	return b, nil
}

// Lengths returns the valid length of every profile without decoding rows.
func (s *Store) Lengths() ([]int, error) {
	rows, err := s.db.Query(`SELECT len FROM profiles ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("store: query lengths: %w", err)
	}
	defer rows.Close()

	ls := make([]int, 0, s.n)
	for rows.Next() {
		var l int
		if err = rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("store: scan length: %w", err)
		}
		ls = append(ls, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: read lengths: %w", err)
	}

	return ls, nil
}

// Names returns the name of every profile in index order.
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM profiles ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("store: query names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, s.n)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: scan name: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: read names: %w", err)
	}

	return names, nil
}
