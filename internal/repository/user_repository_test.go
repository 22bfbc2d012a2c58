package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/stayhub/suites-api/internal/utils"
)

func TestUserCreateHashesAndNormalizes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("ada@example.com", "Ada", sqlmock.AnyArg(), "Customer", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(4, 1))

	repo := NewUserRepo(db)
	u, err := repo.Create(context.Background(), "  Ada@Example.COM ", "Ada", "s3cret!", "Customer", 4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID != 4 {
		t.Fatalf("expected id 4, got %d", u.ID)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash == "s3cret!" {
		t.Fatal("password stored in plain text")
	}
	if !utils.VerifyPassword(u.PasswordHash, "s3cret!") {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").WillReturnError(dup)

	repo := NewUserRepo(db)
	if _, err := repo.Create(context.Background(), "ada@example.com", "Ada", "pw123456", "Customer", 4); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserGetByEmailIgnoresCase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, name, password_hash, role, created_date FROM users").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_date"}))

	repo := NewUserRepo(db)
	if _, err := repo.GetByEmail(context.Background(), "ADA@Example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
