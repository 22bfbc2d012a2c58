package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Suite represents a rentable suite in the catalog. It corresponds to a row
// in the `suites` table. Name is unique across suites (case-insensitive).
// Rate is a fixed-point decimal because it is money; binary floats would
// accumulate rounding drift.
//
// Amenities is populated by the read paths from the suite_amenities join
// table, ordered by when each link was formed. It is never written through
// this struct.
type Suite struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Details     *string         `json:"details"`
	Rate        decimal.Decimal `json:"rate"`
	Sqft        int             `json:"sqft"`
	Occupancy   int             `json:"occupancy"`
	ImageURL    *string         `json:"imageUrl"`
	CreatedDate time.Time       `json:"createdDate"`
	UpdatedDate *time.Time      `json:"updatedDate"`
	Amenities   []*Amenity      `json:"amenities,omitempty"`
}
