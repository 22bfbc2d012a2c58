// Package validate holds the request payload types and the validation rules
// applied before any mutation. Validation is pure: it trims and normalizes
// the payload in place and returns field errors, but never touches the
// database. Uniqueness is checked separately by the handlers against the
// repositories, with the DB unique indexes as the final authority.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Name length limits per entity kind, counted in characters, not bytes,
// matching the column widths.
const (
	SuiteNameMax   = 50
	AmenityNameMax = 100
	UserNameMax    = 100
)

// DefaultRole is assigned when a registration omits the role.
const DefaultRole = "Customer"

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldErrors maps a field name to the messages explaining why it was
// rejected. An empty map means the payload passed.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Empty reports whether no field was rejected.
func (e FieldErrors) Empty() bool { return len(e) == 0 }

// SuitePayload is the inbound representation for suite create and update.
// On update the ID must match the path id exactly.
type SuitePayload struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Details   *string         `json:"details"`
	Rate      decimal.Decimal `json:"rate"`
	Sqft      int             `json:"sqft"`
	Occupancy int             `json:"occupancy"`
	ImageURL  *string         `json:"imageUrl"`
}

// Suite validates a suite payload for create, trimming the name in place.
func Suite(p *SuitePayload) FieldErrors {
	errs := FieldErrors{}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		errs.add("name", "name is required")
	} else if utf8.RuneCountInString(p.Name) > SuiteNameMax {
		errs.add("name", fmt.Sprintf("name must be at most %d characters", SuiteNameMax))
	}
	if p.Rate.IsNegative() {
		errs.add("rate", "rate must not be negative")
	}
	if p.Sqft < 0 {
		errs.add("sqft", "sqft must not be negative")
	}
	if p.Occupancy < 0 {
		errs.add("occupancy", "occupancy must not be negative")
	}
	return errs
}

// SuiteUpdate validates a suite payload for update against the path id.
// A mismatch between the two ids is a client error, never a lookup.
func SuiteUpdate(pathID int64, p *SuitePayload) FieldErrors {
	errs := Suite(p)
	if p.ID != pathID {
		errs.add("id", "id in path does not match id in payload")
	}
	return errs
}

// AmenityPayload is the inbound representation for amenity create and
// update.
type AmenityPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Amenity validates an amenity payload for create, trimming the name in
// place.
func Amenity(p *AmenityPayload) FieldErrors {
	errs := FieldErrors{}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		errs.add("name", "name is required")
	} else if utf8.RuneCountInString(p.Name) > AmenityNameMax {
		errs.add("name", fmt.Sprintf("name must be at most %d characters", AmenityNameMax))
	}
	return errs
}

// AmenityUpdate validates an amenity payload for update against the path id.
func AmenityUpdate(pathID int64, p *AmenityPayload) FieldErrors {
	errs := Amenity(p)
	if p.ID != pathID {
		errs.add("id", "id in path does not match id in payload")
	}
	return errs
}

// RegisterPayload is the inbound representation for user registration.
type RegisterPayload struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Registration validates a registration payload, normalizing the email to
// lower case and defaulting the role to Customer when omitted.
func Registration(p *RegisterPayload) FieldErrors {
	errs := FieldErrors{}
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Email == "" {
		errs.add("email", "email is required")
	} else if !emailRe.MatchString(p.Email) {
		errs.add("email", "email is not a valid address")
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		errs.add("name", "name is required")
	} else if utf8.RuneCountInString(p.Name) > UserNameMax {
		errs.add("name", fmt.Sprintf("name must be at most %d characters", UserNameMax))
	}
	if p.Password == "" {
		errs.add("password", "password is required")
	}
	p.Role = strings.TrimSpace(p.Role)
	if p.Role == "" {
		p.Role = DefaultRole
	}
	return errs
}

// LoginPayload is the inbound representation for login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates a login payload, normalizing the email to lower case.
func Login(p *LoginPayload) FieldErrors {
	errs := FieldErrors{}
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Email == "" {
		errs.add("email", "email is required")
	}
	if p.Password == "" {
		errs.add("password", "password is required")
	}
	return errs
}
