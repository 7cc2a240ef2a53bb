package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/migrations"
	"github.com/grustnolabs/go-grustnogram/models"
)

// sqliteStore is the SQLite-backed implementation of [Store]. It executes
// all session operations against the "sessions" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewStore opens (creating if needed) the SQLite database at dsn, applies
// pending migrations and returns a ready [Store]. The special dsn
// ":memory:" keeps everything in RAM, which tests rely on.
func NewStore(ctx context.Context, dsn string, log *logger.Logger) (Store, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error creating database file")
		return nil, fmt.Errorf("create session database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error connecting database")
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("ping session database: %w", err)
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error migrating database")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewStore").Str("dsn", dsn).Msg("session store ready")

	return &sqliteStore{db: conn, logger: log}, nil
}

// createLocalDBFileIfNotExists makes sure the database file and its parent
// directory exist. SQLite would create the file itself, but not the
// directory. In-memory databases need neither.
func createLocalDBFileIfNotExists(dsn string) error {
	if dsn == "" || dsn == ":memory:" {
		return nil
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		f, err := os.Create(dsn)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Save implements [Store]. The previous session, if any, is removed first
// so the table never grows past one row.
func (s *sqliteStore) Save(ctx context.Context, sess models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.Clear(ctx); err != nil {
		return models.Session{}, err
	}

	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}

	query, args, err := buildInsertSessionQuery(sess)
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Save").Msg("error: building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Save").Msg("error: executing statement")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		sess.SessionID = id
	}

	return sess, nil
}

// Load implements [Store].
func (s *sqliteStore) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Load").Msg("error: building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sess models.Session
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&sess.SessionID, &sess.Email, &sess.Nickname, &sess.AccessToken, &sess.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSession
		}
		log.Err(err).Str("func", "*sqliteStore.Load").Msg("error: scanning row")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return sess, nil
}

// Clear implements [Store].
func (s *sqliteStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionsQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Clear").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteStore.Clear").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Close implements [Store].
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
