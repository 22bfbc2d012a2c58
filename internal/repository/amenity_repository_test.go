package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/stayhub/suites-api/internal/model"
)

func TestAmenityCreateMapsDuplicateKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO amenities").
		WithArgs("Pool", nil, sqlmock.AnyArg()).
		WillReturnError(dup)

	repo := NewAmenityRepo(db)
	a := &model.Amenity{Name: "Pool", CreatedDate: time.Now().UTC()}
	if err := repo.Create(context.Background(), a); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

// Deleting a linked amenity succeeds and removes the links silently, in the
// same transaction.
func TestAmenityDeleteRemovesLinksFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM suite_amenities WHERE amenity_id").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM amenities WHERE id").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewAmenityRepo(db)
	if err := repo.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestAmenityDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM suite_amenities WHERE amenity_id").
		WithArgs(int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM amenities WHERE id").
		WithArgs(int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewAmenityRepo(db)
	if err := repo.Delete(context.Background(), 77); !errors.Is(err, ErrAmenityNotFound) {
		t.Fatalf("expected ErrAmenityNotFound, got %v", err)
	}
}
