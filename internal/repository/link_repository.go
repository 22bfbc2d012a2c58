package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/stayhub/suites-api/internal/model"
)

// LinkRepo manages the suite_amenities join table. A link row ties exactly
// one suite to one amenity; the (suite_id, amenity_id) pair is the primary
// key, so the same link cannot exist twice.
type LinkRepo struct {
	db *sql.DB
}

// NewLinkRepo constructs a LinkRepo with the provided DB handle.
func NewLinkRepo(db *sql.DB) *LinkRepo {
	return &LinkRepo{db: db}
}

// Link creates a suite↔amenity link stamped with the current UTC time and
// returns the stored row so callers echo the timestamp that was actually
// inserted. Returns ErrLinkExists when the pair is already linked and
// ErrLinkParentMissing when either side was deleted in the meantime.
func (r *LinkRepo) Link(ctx context.Context, suiteID, amenityID int64) (*model.SuiteAmenity, error) {
	link := &model.SuiteAmenity{SuiteID: suiteID, AmenityID: amenityID, CreatedDate: time.Now().UTC()}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO suite_amenities (suite_id, amenity_id, created_date) VALUES (?, ?, ?)",
		link.SuiteID, link.AmenityID, link.CreatedDate)
	switch {
	case err == nil:
		return link, nil
	case isDuplicateKey(err):
		return nil, ErrLinkExists
	case isForeignKeyViolation(err):
		return nil, ErrLinkParentMissing
	default:
		return nil, err
	}
}

// Unlink removes a suite↔amenity link. Returns ErrLinkNotFound when the
// pair is not linked.
func (r *LinkRepo) Unlink(ctx context.Context, suiteID, amenityID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM suite_amenities WHERE suite_id = ? AND amenity_id = ?",
		suiteID, amenityID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// AmenitiesForSuite returns the amenities linked to one suite, ordered by
// when each link was formed (amenity id breaks same-second ties).
func (r *LinkRepo) AmenitiesForSuite(ctx context.Context, suiteID int64) ([]*model.Amenity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.name, a.description, a.created_date, a.updated_date
		 FROM suite_amenities sa
		 JOIN amenities a ON a.id = sa.amenity_id
		 WHERE sa.suite_id = ?
		 ORDER BY sa.created_date, a.id`, suiteID)
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

// AmenitiesBySuite loads every link row joined with its amenity in a single
// query and groups the result by suite id. The suite list endpoint merges
// this map in memory instead of issuing one lookup per suite.
func (r *LinkRepo) AmenitiesBySuite(ctx context.Context) (map[int64][]*model.Amenity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sa.suite_id, a.id, a.name, a.description, a.created_date, a.updated_date
		 FROM suite_amenities sa
		 JOIN amenities a ON a.id = sa.amenity_id
		 ORDER BY sa.created_date, a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]*model.Amenity)
	for rows.Next() {
		var (
			suiteID int64
			a       model.Amenity
			desc    sql.NullString
			updated sql.NullTime
		)
		if err := rows.Scan(&suiteID, &a.ID, &a.Name, &desc, &a.CreatedDate, &updated); err != nil {
			return nil, err
		}
		if desc.Valid {
			a.Description = &desc.String
		}
		if updated.Valid {
			t := updated.Time
			a.UpdatedDate = &t
		}
		out[suiteID] = append(out[suiteID], &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
