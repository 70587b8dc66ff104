package tracker

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ManifestFile is the database file name inside the state directory.
const ManifestFile = "manifest.db"

// Manifest records what generation runs wrote, so later invocations can
// tell generated files apart from files the user has edited or removed.
type Manifest struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// FileEntry is one recorded workspace file.
type FileEntry struct {
	RelPath   string
	Topic     string // topic directory, "" for the index
	Level     string // "" for context and index files
	Kind      string // theory, example, context, index
	SHA256    string
	Size      int64
	RunID     string
	WrittenAt time.Time
}

// Run is one recorded generation run.
type Run struct {
	ID           string
	StartedAt    time.Time
	FinishedAt   time.Time // zero while the run is open
	FilesWritten int
	BytesWritten int64
	ToolVersion  string
}

// OpenManifest creates or opens the manifest database under stateDir.
func OpenManifest(stateDir string) (*Manifest, error) {
	dbPath := filepath.Join(stateDir, ManifestFile)

	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}

	m := &Manifest{db: db, dbPath: dbPath}
	if err := m.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init manifest schema: %w", err)
	}
	return m, nil
}

// Close closes the database connection.
func (m *Manifest) Close() error {
	return m.db.Close()
}

// Path returns the database file path.
func (m *Manifest) Path() string {
	return m.dbPath
}

func (m *Manifest) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		files_written INTEGER NOT NULL DEFAULT 0,
		bytes_written INTEGER NOT NULL DEFAULT 0,
		tool_version TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	CREATE TABLE IF NOT EXISTS files (
		rel_path TEXT PRIMARY KEY,
		topic TEXT NOT NULL DEFAULT '',
		level TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		sha256 TEXT NOT NULL,
		size INTEGER NOT NULL,
		run_id TEXT NOT NULL,
		written_at DATETIME NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	CREATE INDEX IF NOT EXISTS idx_files_topic ON files(topic);
	CREATE INDEX IF NOT EXISTS idx_files_run ON files(run_id);
	`
	_, err := m.db.Exec(schema)
	return err
}

// BeginRun records the start of a generation run.
func (m *Manifest) BeginRun(id, toolVersion string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.db.Exec(`
		INSERT INTO runs (id, started_at, tool_version) VALUES (?, ?, ?)
	`, id, time.Now().UTC(), toolVersion)
	if err != nil {
		return fmt.Errorf("begin run %s: %w", id, err)
	}
	return nil
}

// FinishRun closes a run with its totals.
func (m *Manifest) FinishRun(id string, files int, bytes int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.db.Exec(`
		UPDATE runs SET finished_at = ?, files_written = ?, bytes_written = ?
		WHERE id = ?
	`, time.Now().UTC(), files, bytes, id)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish run %s: unknown run", id)
	}
	return nil
}

// RecordFile upserts one written file. The newest write wins.
func (m *Manifest) RecordFile(e FileEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.WrittenAt.IsZero() {
		e.WrittenAt = time.Now().UTC()
	}

	_, err := m.db.Exec(`
		INSERT INTO files (rel_path, topic, level, kind, sha256, size, run_id, written_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(rel_path) DO UPDATE SET
			topic = excluded.topic,
			level = excluded.level,
			kind = excluded.kind,
			sha256 = excluded.sha256,
			size = excluded.size,
			run_id = excluded.run_id,
			written_at = excluded.written_at
	`, e.RelPath, e.Topic, e.Level, e.Kind, e.SHA256, e.Size, e.RunID, e.WrittenAt)
	if err != nil {
		return fmt.Errorf("record file %s: %w", e.RelPath, err)
	}
	return nil
}

// Files returns every recorded file ordered by path.
func (m *Manifest) Files() ([]FileEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, err := m.db.Query(`
		SELECT rel_path, topic, level, kind, sha256, size, run_id, written_at
		FROM files ORDER BY rel_path
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []FileEntry
	for rows.Next() {
		var e FileEntry
		if err := rows.Scan(&e.RelPath, &e.Topic, &e.Level, &e.Kind,
			&e.SHA256, &e.Size, &e.RunID, &e.WrittenAt); err != nil {
			return nil, err
		}
		files = append(files, e)
	}
	return files, rows.Err()
}

// FileByPath returns the recorded entry for a workspace-relative path.
func (m *Manifest) FileByPath(relPath string) (*FileEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var e FileEntry
	err := m.db.QueryRow(`
		SELECT rel_path, topic, level, kind, sha256, size, run_id, written_at
		FROM files WHERE rel_path = ?
	`, relPath).Scan(&e.RelPath, &e.Topic, &e.Level, &e.Kind,
		&e.SHA256, &e.Size, &e.RunID, &e.WrittenAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// LastRun returns the most recently started run, or nil when the
// manifest has never recorded one.
func (m *Manifest) LastRun() (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var r Run
	var finished sql.NullTime
	var version sql.NullString
	err := m.db.QueryRow(`
		SELECT id, started_at, finished_at, files_written, bytes_written, tool_version
		FROM runs ORDER BY started_at DESC LIMIT 1
	`).Scan(&r.ID, &r.StartedAt, &finished, &r.FilesWritten, &r.BytesWritten, &version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if finished.Valid {
		r.FinishedAt = finished.Time
	}
	r.ToolVersion = version.String
	return &r, nil
}

// RunCount returns how many runs the manifest has recorded.
func (m *Manifest) RunCount() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
