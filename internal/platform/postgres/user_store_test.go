package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jstanier/taskboard-api/internal/domain"
	"github.com/jstanier/taskboard-api/internal/store"
)

func newUserStoreWithMock(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresUserStore(db, nil), mock, db
}

func validStoredUser() *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Username:       "taskuser",
		HashedPassword: "$2a$10$storedhash",
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func TestUserStoreCreate_Success(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	user := validStoredUser()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Username, user.HashedPassword, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserStoreCreate_DuplicateUsername(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	user := validStoredUser()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	err := s.Create(context.Background(), user)
	if !errors.Is(err, store.ErrUsernameExists) {
		t.Fatalf("want ErrUsernameExists, got %v", err)
	}
}

func TestUserStoreCreate_MissingHash(t *testing.T) {
	s, _, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	user := validStoredUser()
	user.HashedPassword = ""
	user.Password = "plaintextpassword"

	err := s.Create(context.Background(), user)
	if !errors.Is(err, domain.ErrEmptyHashedPassword) {
		t.Fatalf("want ErrEmptyHashedPassword, got %v", err)
	}
}

func TestUserStoreGetByUsername_Success(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	want := validStoredUser()

	rows := sqlmock.NewRows(
		[]string{"id", "username", "hashed_password", "created_at", "updated_at"},
	).AddRow(want.ID, want.Username, want.HashedPassword, want.CreatedAt, want.UpdatedAt)

	mock.ExpectQuery(`SELECT id, username, hashed_password, created_at, updated_at\s+FROM users\s+WHERE username = \$1`).
		WithArgs(want.Username).
		WillReturnRows(rows)

	got, err := s.GetByUsername(context.Background(), want.Username)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID || got.Username != want.Username {
		t.Fatalf("wrong user returned: got %v want %v", got, want)
	}
	if got.HashedPassword != want.HashedPassword {
		t.Fatalf("hashed password not loaded")
	}
}

func TestUserStoreGetByUsername_NotFound(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestUserStoreGetByID_NotFound(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	id := uuid.New()
	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), id)
	if !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestUserStoreWithTx(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	txStore := s.WithTx(tx)
	if txStore == nil {
		t.Fatal("WithTx returned nil")
	}
	if _, ok := txStore.(*PostgresUserStore); !ok {
		t.Fatalf("WithTx returned unexpected type %T", txStore)
	}
}
