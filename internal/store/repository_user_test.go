package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/migrations"
	"github.com/MKhiriev/go-room-chat/models"
)

// newMockDB оборачивает sqlmock в *DB с postgres-диалектом.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── CreateUser ──

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "alice", Password: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if created.Name != "alice" {
		t.Errorf("expected name alice, got %s", created.Name)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "alice"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "alice"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ── FindUsers ──

func TestFindUsers_NoFilter(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "alice").
		AddRow(2, "bob")

	mock.ExpectQuery(`SELECT id, name FROM users ORDER BY id`).
		WillReturnRows(rows)

	users, err := repo.FindUsers(context.Background(), models.UserSearch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Name != "bob" || users[1].Password != "" {
		t.Errorf("unexpected user: %+v", users[1])
	}
}

func TestFindUsers_ByIDAndName(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, name FROM users WHERE id = \$1 AND name = \$2`).
		WithArgs(int64(3), "carol").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "carol"))

	users, err := repo.FindUsers(context.Background(), models.UserSearch{ID: 3, Name: "carol"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].ID != 3 {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestFindUsers_EmptyResultIsNotNil(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, name FROM users WHERE name = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	users, err := repo.FindUsers(context.Background(), models.UserSearch{Name: "nobody"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
}

func TestFindUsers_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// неверная форма строки → ошибка сканирования
	mock.ExpectQuery("SELECT id, name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindUsers(context.Background(), models.UserSearch{})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, name FROM users").
		WillReturnError(errors.New("boom"))

	_, err := repo.FindUsers(context.Background(), models.UserSearch{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ── GetUserByID ──

func TestGetUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, name, password_hash FROM users WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(5, "dave", "h"))

	u, err := repo.GetUserByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Password != "h" {
		t.Errorf("expected password hash to be loaded, got %q", u.Password)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, name, password_hash FROM users").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ── DeleteUser ──

func TestDeleteUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted row, got %d", n)
	}
}

func TestDeleteUser_NothingDeleted(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.DeleteUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted rows, got %d", n)
	}
}

func TestDeleteUser_ExecError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WillReturnError(errors.New("boom"))

	_, err := repo.DeleteUser(context.Background(), 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
