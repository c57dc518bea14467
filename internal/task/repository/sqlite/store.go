package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	_ "modernc.org/sqlite"

	pkgLog "github.com/JellyPork/bunflow/pkg/log"
)

//go:embed migrations.sql
var migrationsFS embed.FS

const tagCacheTTL = 10 * time.Minute

// Store owns the database handle. Its Tasks and Tags facets implement
// repository.TaskRepository and repository.TagRegistry.
type Store struct {
	db *sql.DB
	l  pkgLog.Logger

	tasks *TaskStore
	tags  *TagStore
}

// TaskStore is the task facet of the Store.
type TaskStore struct {
	db *sql.DB
}

// TagStore is the tag registry facet of the Store.
type TagStore struct {
	db *sql.DB

	// lower(name) -> tag id, so quick-add bursts do not hit the DB for
	// every repeated tag mention.
	tagCache *expirable.LRU[string, string]
}

// Config holds sqlite open parameters.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// Open opens (creating if needed) the database at cfg.Path and applies the
// embedded migrations.
func Open(cfg Config, l pkgLog.Logger) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.BusyTimeout > 0 {
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")
	_, _ = db.Exec("PRAGMA foreign_keys = ON")

	st := &Store{
		db:    db,
		l:     l,
		tasks: &TaskStore{db: db},
		tags: &TagStore{
			db:       db,
			tagCache: expirable.NewLRU[string, string](256, nil, tagCacheTTL),
		},
	}
	if err := st.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

// Tasks returns the TaskRepository facet.
func (s *Store) Tasks() *TaskStore { return s.tasks }

// Tags returns the TagRegistry facet.
func (s *Store) Tags() *TagStore { return s.tags }

func (s *Store) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, string(b))
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
