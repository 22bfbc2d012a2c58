package model

import "time"

// Amenity is a feature a suite can offer (pool, wifi, parking). It
// corresponds to a row in the `amenities` table. Name is unique across
// amenities (case-insensitive).
type Amenity struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedDate time.Time  `json:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate"`
}

// SuiteAmenity is a row in the suite_amenities join table linking exactly
// one suite to one amenity. The pair (SuiteID, AmenityID) is the primary
// key; CreatedDate records when the link was formed and drives the order in
// which a suite's amenities are listed.
type SuiteAmenity struct {
	SuiteID     int64     `json:"suiteId"`
	AmenityID   int64     `json:"amenityId"`
	CreatedDate time.Time `json:"createdDate"`
}
