// Package store persists finished packings to SQLite so runs can be compared
// and re-analysed later. The core engine never touches this package; stored
// runs are rehydrated through pack.FromSpheres.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/spherepack/pack"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if necessary) a packing database at path and
// bootstraps the schema.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			container         TEXT,
			seed              BIGINT,
			sphere_count      BIGINT,
			volume_fraction   DOUBLE,
			created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS spheres (
			run_id            TEXT,
			ordinal           BIGINT,
			x                 DOUBLE,
			y                 DOUBLE,
			z                 DOUBLE,
			radius            DOUBLE,
			PRIMARY KEY (run_id, ordinal),
			FOREIGN KEY (run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// RunMeta summarises one stored packing run.
type RunMeta struct {
	ID             string
	Container      string
	Seed           int64
	SphereCount    int
	VolumeFraction float64
	CreatedAt      time.Time
}

// SaveRun stores a finished packing and returns its generated run ID. The
// sphere rows keep placement order so a reloaded run replays identically.
func (db *DB) SaveRun(p *pack.Packing, container string, seed int64) (string, error) {
	id := uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, container, seed, sphere_count, volume_fraction) VALUES (?, ?, ?, ?, ?)",
		id, container, seed, len(p.Spheres), p.VolumeFraction(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO spheres (run_id, ordinal, x, y, z, radius) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare sphere insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range p.Spheres {
		if _, err := stmt.Exec(id, i, s.Center.X, s.Center.Y, s.Center.Z, s.Radius); err != nil {
			return "", fmt.Errorf("failed to insert sphere %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// LoadRun rebuilds a stored packing against the given container. Spheres come
// back in placement order.
func (db *DB) LoadRun(id string, container pack.Container) (*pack.Packing, error) {
	rows, err := db.Query("SELECT x, y, z, radius FROM spheres WHERE run_id = ? ORDER BY ordinal", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query spheres: %w", err)
	}
	defer rows.Close()

	var spheres []pack.Sphere
	for rows.Next() {
		var x, y, z, radius float64
		if err := rows.Scan(&x, &y, &z, &radius); err != nil {
			return nil, fmt.Errorf("failed to scan sphere: %w", err)
		}
		spheres = append(spheres, pack.Sphere{Center: r3.Vec{X: x, Y: y, Z: z}, Radius: radius})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(spheres) == 0 {
		return nil, fmt.Errorf("run %s not found", id)
	}
	return pack.FromSpheres(spheres, container), nil
}

// ListRuns returns metadata for all stored runs, newest first.
func (db *DB) ListRuns() ([]RunMeta, error) {
	rows, err := db.Query(`
		SELECT run_id, container, seed, sphere_count, volume_fraction, created_at
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		var m RunMeta
		if err := rows.Scan(&m.ID, &m.Container, &m.Seed, &m.SphereCount, &m.VolumeFraction, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}
