package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

// argCapture matches any time.Time argument and records it.
type argCapture struct{ dst *time.Time }

func (a argCapture) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	if ok {
		*a.dst = t
	}
	return ok
}

func TestLinkDuplicatePair(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO suite_amenities").
		WithArgs(int64(1), int64(2), sqlmock.AnyArg()).
		WillReturnError(dup)

	repo := NewLinkRepo(db)
	if _, err := repo.Link(context.Background(), 1, 2); !errors.Is(err, ErrLinkExists) {
		t.Fatalf("expected ErrLinkExists, got %v", err)
	}
}

// The returned row carries the timestamp that was actually inserted.
func TestLinkEchoesInsertedStamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	var inserted time.Time
	mock.ExpectExec("INSERT INTO suite_amenities").
		WithArgs(int64(1), int64(2), argCapture{&inserted}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewLinkRepo(db)
	link, err := repo.Link(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if !link.CreatedDate.Equal(inserted) {
		t.Fatalf("returned stamp %v differs from inserted %v", link.CreatedDate, inserted)
	}
}

// A parent row deleted between the existence checks and the insert fails
// the foreign key and maps to a dedicated sentinel.
func TestLinkParentDeletedConcurrently(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO suite_amenities").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"})

	repo := NewLinkRepo(db)
	if _, err := repo.Link(context.Background(), 1, 2); !errors.Is(err, ErrLinkParentMissing) {
		t.Fatalf("expected ErrLinkParentMissing, got %v", err)
	}
}

func TestUnlinkMissingPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM suite_amenities WHERE suite_id").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewLinkRepo(db)
	if err := repo.Unlink(context.Background(), 1, 2); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}

func TestAmenitiesBySuiteGroupsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"suite_id", "id", "name", "description", "created_date", "updated_date",
	}).
		AddRow(int64(1), int64(10), "Wi-Fi", nil, now, nil).
		AddRow(int64(1), int64(11), "Pool", "outdoor", now, nil).
		AddRow(int64(3), int64(10), "Wi-Fi", nil, now, nil)

	mock.ExpectQuery("FROM suite_amenities sa").WillReturnRows(rows)

	repo := NewLinkRepo(db)
	got, err := repo.AmenitiesBySuite(context.Background())
	if err != nil {
		t.Fatalf("AmenitiesBySuite: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suites, got %d", len(got))
	}
	if len(got[1]) != 2 || len(got[3]) != 1 {
		t.Fatalf("unexpected grouping: %v", got)
	}
	if got[1][0].Name != "Wi-Fi" || got[1][1].Name != "Pool" {
		t.Fatalf("expected insertion order preserved, got %q then %q", got[1][0].Name, got[1][1].Name)
	}
	if got[1][1].Description == nil || *got[1][1].Description != "outdoor" {
		t.Fatalf("expected description to survive the scan")
	}
}
