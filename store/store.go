// Package store persists landmark builds in SQLite so a host can resume the
// incremental scheduler across process restarts.
//
// A build row records the configuration and starting chunks. Scheduler state
// and the finished summary are stored as zstd-compressed JSON blobs keyed by
// build id. Builds made from a fixed map also keep that map, compressed in
// its text form, so a resumed build sees the same terrain.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/config"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/pipeline"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/scheduler"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// ErrNotFound is returned for unknown build ids or missing blobs.
var ErrNotFound = errors.New("store: not found")

// DB is an open build store.
type DB struct {
	conn *sqlx.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder
	log  *slog.Logger
}

// Build is one row of the builds table.
type Build struct {
	ID        string `db:"id" json:"id"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at"`
	Phase     string `db:"phase" json:"phase"`
	Chunks    string `db:"chunks" json:"chunks"`
	ConfigRaw string `db:"config" json:"-"`
}

// ChunkNames splits the stored chunk list.
func (b Build) ChunkNames() []chunk.Name {
	if b.Chunks == "" {
		return nil
	}
	return config.Names(strings.Split(b.Chunks, ","))
}

// Config decodes the configuration the build was created with.
func (b Build) Config() (config.Config, error) {
	var c config.Config
	if err := json.Unmarshal([]byte(b.ConfigRaw), &c); err != nil {
		return c, fmt.Errorf("store: build %s config: %w", b.ID, err)
	}
	return c, nil
}

// Open opens or creates the database at path.
func Open(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	conn, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	for _, p := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("pragma: %w", err)
		}
	}
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		conn.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		conn.Close()
		return nil, err
	}
	return &DB{conn: conn, enc: enc, dec: dec, log: logger}, nil
}

// Close releases the connection and codecs.
func (db *DB) Close() error {
	db.dec.Close()
	return errors.Join(db.enc.Close(), db.conn.Close())
}

func migrate(conn *sqlx.DB) error {
	_, err := conn.Exec(`
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		phase TEXT NOT NULL,
		chunks TEXT NOT NULL,
		config TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS states (
		build_id TEXT PRIMARY KEY REFERENCES builds(id) ON DELETE CASCADE,
		blob BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		build_id TEXT PRIMARY KEY REFERENCES builds(id) ON DELETE CASCADE,
		blob BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS worlds (
		build_id TEXT PRIMARY KEY REFERENCES builds(id) ON DELETE CASCADE,
		blob BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_builds_created ON builds(created_at);
	`)
	return err
}

// timeLayout keeps nanosecond timestamps fixed-width so they sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

// CreateBuild registers a new build and returns it with a fresh id.
func (db *DB) CreateBuild(ctx context.Context, cfg config.Config, chunks []chunk.Name) (Build, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return Build{}, err
	}
	ids := make([]string, len(chunks))
	for i, n := range chunks {
		ids[i] = string(n)
	}
	ts := now()
	b := Build{
		ID:        uuid.NewString(),
		CreatedAt: ts,
		UpdatedAt: ts,
		Phase:     string(scheduler.PhaseLookup),
		Chunks:    strings.Join(ids, ","),
		ConfigRaw: string(raw),
	}
	_, err = db.conn.NamedExecContext(ctx, `
		INSERT INTO builds (id, created_at, updated_at, phase, chunks, config)
		VALUES (:id, :created_at, :updated_at, :phase, :chunks, :config)`, b)
	if err != nil {
		return Build{}, fmt.Errorf("create build: %w", err)
	}
	db.log.Info("build created", "build", b.ID, "chunks", b.Chunks)
	return b, nil
}

// GetBuild fetches one build.
func (db *DB) GetBuild(ctx context.Context, id string) (Build, error) {
	var b Build
	err := db.conn.GetContext(ctx, &b, "SELECT * FROM builds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Build{}, fmt.Errorf("%w: build %s", ErrNotFound, id)
	}
	return b, err
}

// ListBuilds returns every build, oldest first.
func (db *DB) ListBuilds(ctx context.Context) ([]Build, error) {
	var out []Build
	err := db.conn.SelectContext(ctx, &out, "SELECT * FROM builds ORDER BY created_at, id")
	return out, err
}

// SaveState stores st for build id and records its phase.
func (db *DB) SaveState(ctx context.Context, id string, st *scheduler.State) error {
	blob, err := db.pack(st)
	if err != nil {
		return err
	}
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE builds SET phase = ?, updated_at = ? WHERE id = ?", string(st.Phase), now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: build %s", ErrNotFound, id)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO states (build_id, blob) VALUES (?, ?)
		ON CONFLICT(build_id) DO UPDATE SET blob = excluded.blob`, id, blob); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	db.log.Debug("state saved", "build", id, "phase", st.Phase, "bytes", len(blob))
	return nil
}

// LoadState restores the last saved State of build id.
func (db *DB) LoadState(ctx context.Context, id string) (*scheduler.State, error) {
	var st scheduler.State
	if err := db.loadBlob(ctx, "states", id, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveResult stores the finished summary of build id.
func (db *DB) SaveResult(ctx context.Context, id string, sum pipeline.Summary) error {
	if _, err := db.GetBuild(ctx, id); err != nil {
		return err
	}
	blob, err := db.pack(sum)
	if err != nil {
		return err
	}
	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO results (build_id, blob) VALUES (?, ?)
		ON CONFLICT(build_id) DO UPDATE SET blob = excluded.blob`, id, blob)
	return err
}

// LoadResult returns the summary saved for build id.
func (db *DB) LoadResult(ctx context.Context, id string) (pipeline.Summary, error) {
	var sum pipeline.Summary
	err := db.loadBlob(ctx, "results", id, &sum)
	return sum, err
}

// SaveWorld stores the terrain build id was made from.
func (db *DB) SaveWorld(ctx context.Context, id string, m *terrain.Map) error {
	if _, err := db.GetBuild(ctx, id); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		return err
	}
	blob := db.enc.EncodeAll(buf.Bytes(), nil)
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO worlds (build_id, blob) VALUES (?, ?)
		ON CONFLICT(build_id) DO UPDATE SET blob = excluded.blob`, id, blob)
	if err != nil {
		return err
	}
	db.log.Debug("world saved", "build", id, "chunks", len(m.Names()), "bytes", len(blob))
	return nil
}

// LoadWorld returns the stored terrain of build id, or ErrNotFound for
// builds over generated worlds.
func (db *DB) LoadWorld(ctx context.Context, id string, topo chunk.Topology) (*terrain.Map, error) {
	raw, err := db.loadRaw(ctx, "worlds", id)
	if err != nil {
		return nil, err
	}
	m, err := terrain.Read(bytes.NewReader(raw), topo)
	if err != nil {
		return nil, fmt.Errorf("store: build %s world: %w", id, err)
	}
	return m, nil
}

func (db *DB) pack(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return db.enc.EncodeAll(raw, nil), nil
}

// loadBlob reads table's blob for id into v.
func (db *DB) loadBlob(ctx context.Context, table, id string, v any) error {
	raw, err := db.loadRaw(ctx, table, id)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// loadRaw reads and decompresses table's blob for id; table is a fixed
// identifier.
func (db *DB) loadRaw(ctx context.Context, table, id string) ([]byte, error) {
	var blob []byte
	err := db.conn.GetContext(ctx, &blob, "SELECT blob FROM "+table+" WHERE build_id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s for build %s", ErrNotFound, table, id)
	}
	if err != nil {
		return nil, err
	}
	raw, err := db.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", table, err)
	}
	return raw, nil
}
