package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stayhub/suites-api/internal/model"
)

// SuiteRepo encapsulates all database queries related to suites.
type SuiteRepo struct {
	db *sql.DB
}

// NewSuiteRepo constructs a SuiteRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewSuiteRepo(db *sql.DB) *SuiteRepo {
	return &SuiteRepo{db: db}
}

const suiteColumns = "id, name, details, rate, sqft, occupancy, image_url, created_date, updated_date"

func scanSuite(row interface{ Scan(...any) error }) (*model.Suite, error) {
	var (
		s       model.Suite
		details sql.NullString
		image   sql.NullString
		updated sql.NullTime
	)
	if err := row.Scan(&s.ID, &s.Name, &details, &s.Rate, &s.Sqft, &s.Occupancy,
		&image, &s.CreatedDate, &updated); err != nil {
		return nil, err
	}
	if details.Valid {
		s.Details = &details.String
	}
	if image.Valid {
		s.ImageURL = &image.String
	}
	if updated.Valid {
		t := updated.Time
		s.UpdatedDate = &t
	}
	return &s, nil
}

// List returns all suites in insertion order.
func (r *SuiteRepo) List(ctx context.Context) ([]*model.Suite, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+suiteColumns+" FROM suites ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Suite
	for rows.Next() {
		s, err := scanSuite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a suite by its ID. It returns ErrSuiteNotFound if no row
// matches.
func (r *SuiteRepo) GetByID(ctx context.Context, id int64) (*model.Suite, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+suiteColumns+" FROM suites WHERE id = ?", id)
	s, err := scanSuite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSuiteNotFound
	}
	return s, err
}

// NameExists reports whether another suite already uses the given name.
// The comparison is case-insensitive (the column collation also is, so this
// fast path agrees with the unique index). excludeID lets updates ignore
// the record's own row; pass 0 for creates.
func (r *SuiteRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM suites WHERE LOWER(name) = LOWER(?) AND id <> ?)",
		name, excludeID).Scan(&exists)
	return exists, err
}

// Create inserts a new suite. On success the suite's ID field is populated
// with the generated value. A racing duplicate name surfaces as
// ErrNameTaken via the unique index.
func (r *SuiteRepo) Create(ctx context.Context, s *model.Suite) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO suites (name, details, rate, sqft, occupancy, image_url, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Details, s.Rate, s.Sqft, s.Occupancy, s.ImageURL, s.CreatedDate)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrNameTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// Update persists the mutable fields of an existing suite, including the
// freshly stamped updated_date. Existence is the caller's concern; an update
// that changes nothing affects zero rows and is still a success.
func (r *SuiteRepo) Update(ctx context.Context, s *model.Suite) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE suites
		 SET name = ?, details = ?, rate = ?, sqft = ?, occupancy = ?, image_url = ?, updated_date = ?
		 WHERE id = ?`,
		s.Name, s.Details, s.Rate, s.Sqft, s.Occupancy, s.ImageURL, s.UpdatedDate, s.ID)
	if err != nil && isDuplicateKey(err) {
		return ErrNameTaken
	}
	return err
}

// Delete removes a suite and its join rows in one transaction, so a crash
// mid-operation can never leave an orphaned link. Returns ErrSuiteNotFound
// when the suite does not exist.
func (r *SuiteRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM suite_amenities WHERE suite_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM suites WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrSuiteNotFound
		return err
	}
	err = tx.Commit()
	return err
}
