package session

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/models"
)

func newTestStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	store := &sqliteStore{
		db:     db,
		logger: logger.NewLogger("test"),
	}
	return store, mock, db
}

func TestSave_Success(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	ctx := context.Background()
	sess := models.Session{
		Email:       "alice@example.com",
		Nickname:    "sadalice",
		AccessToken: "tok-abc",
	}

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sess.Email, sess.Nickname, sess.AccessToken, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	saved, err := store.Save(ctx, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.SessionID != 7 {
		t.Errorf("expected SessionID=7, got %d", saved.SessionID)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be filled in")
	}
}

func TestSave_ClearError(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("db network error"))

	_, err := store.Save(context.Background(), models.Session{Email: "alice@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestSave_InsertError(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("disk I/O error"))

	_, err := store.Save(context.Background(), models.Session{Email: "alice@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestLoad_Success(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(sessionColumns).
		AddRow(1, "alice@example.com", "sadalice", "tok-abc", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnRows(rows)

	sess, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.SessionID != 1 {
		t.Errorf("expected SessionID=1, got %d", sess.SessionID)
	}
	if sess.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", sess.Email)
	}
	if sess.AccessToken != "tok-abc" {
		t.Errorf("expected token tok-abc, got %s", sess.AccessToken)
	}
}

func TestLoad_NoSession(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Load(context.Background())
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestLoad_ScanError(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"session_id"}).AddRow(1) // intentionally wrong shape

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnRows(rows)

	_, err := store.Load(context.Background())
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestLoad_DBError(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnError(errors.New("db failure"))

	_, err := store.Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestClear_Error(t *testing.T) {
	store, mock, db := newTestStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("db failure"))

	err := store.Clear(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

// TestStore_RoundTrip runs against a real in-memory SQLite database,
// migrations included.
func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := NewStore(ctx, ":memory:", logger.NewLogger("test"))
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	defer store.Close()

	if _, err = store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on empty store, got %v", err)
	}

	saved, err := store.Save(ctx, models.Session{
		Email:       "alice@example.com",
		Nickname:    "sadalice",
		AccessToken: "tok-abc",
	})
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if saved.SessionID == 0 {
		t.Error("expected assigned SessionID")
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Email != saved.Email || loaded.Nickname != saved.Nickname || loaded.AccessToken != saved.AccessToken {
		t.Errorf("loaded session mismatch: got %+v, want %+v", loaded, saved)
	}
	if loaded.CreatedAt.Unix() != saved.CreatedAt.Unix() {
		t.Errorf("expected CreatedAt %v, got %v", saved.CreatedAt, loaded.CreatedAt)
	}

	// a second login replaces the first
	if _, err = store.Save(ctx, models.Session{Email: "bob@example.com", AccessToken: "tok-def"}); err != nil {
		t.Fatalf("Save() replacement error: %v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() after replacement error: %v", err)
	}
	if loaded.Email != "bob@example.com" {
		t.Errorf("expected replacement session, got %s", loaded.Email)
	}

	if err = store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err = store.Load(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after Clear, got %v", err)
	}
}
