package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stayhub/suites-api/internal/model"
)

// AmenityRepo encapsulates all database queries related to amenities.
type AmenityRepo struct {
	db *sql.DB
}

// NewAmenityRepo constructs an AmenityRepo with the provided DB handle.
func NewAmenityRepo(db *sql.DB) *AmenityRepo {
	return &AmenityRepo{db: db}
}

const amenityColumns = "id, name, description, created_date, updated_date"

func scanAmenity(row interface{ Scan(...any) error }) (*model.Amenity, error) {
	var (
		a       model.Amenity
		desc    sql.NullString
		updated sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.Name, &desc, &a.CreatedDate, &updated); err != nil {
		return nil, err
	}
	if desc.Valid {
		a.Description = &desc.String
	}
	if updated.Valid {
		t := updated.Time
		a.UpdatedDate = &t
	}
	return &a, nil
}

// List returns all amenities in insertion order.
func (r *AmenityRepo) List(ctx context.Context) ([]*model.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+amenityColumns+" FROM amenities ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Amenity
	for rows.Next() {
		a, err := scanAmenity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches an amenity by its ID. It returns ErrAmenityNotFound if no
// row matches.
func (r *AmenityRepo) GetByID(ctx context.Context, id int64) (*model.Amenity, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+amenityColumns+" FROM amenities WHERE id = ?", id)
	a, err := scanAmenity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAmenityNotFound
	}
	return a, err
}

// NameExists reports whether another amenity already uses the given name,
// case-insensitively. excludeID lets updates ignore the record's own row.
func (r *AmenityRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM amenities WHERE LOWER(name) = LOWER(?) AND id <> ?)",
		name, excludeID).Scan(&exists)
	return exists, err
}

// Create inserts a new amenity and populates its ID. Duplicate names map to
// ErrNameTaken via the unique index.
func (r *AmenityRepo) Create(ctx context.Context, a *model.Amenity) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO amenities (name, description, created_date) VALUES (?, ?, ?)",
		a.Name, a.Description, a.CreatedDate)
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
	a.ID = id
	return nil
}

// Update persists the mutable fields of an existing amenity.
func (r *AmenityRepo) Update(ctx context.Context, a *model.Amenity) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE amenities SET name = ?, description = ?, updated_date = ? WHERE id = ?",
		a.Name, a.Description, a.UpdatedDate, a.ID)
	if err != nil && isDuplicateKey(err) {
		return ErrNameTaken
	}
	return err
}

// Delete removes an amenity together with any suite links still pointing at
// it, in one transaction. Deleting a linked amenity is allowed; the links go
// silently. Returns ErrAmenityNotFound when the amenity does not exist.
func (r *AmenityRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM suite_amenities WHERE amenity_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM amenities WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrAmenityNotFound
		return err
	}
	err = tx.Commit()
	return err
}
