package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSuiteTrimsAndAccepts(t *testing.T) {
	p := SuitePayload{
		Name:      "  Garden Suite  ",
		Rate:      decimal.RequireFromString("275.00"),
		Sqft:      1500,
		Occupancy: 3,
	}
	errs := Suite(&p)
	if !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if p.Name != "Garden Suite" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
}

func TestSuiteRejectsMissingAndOverlongName(t *testing.T) {
	p := SuitePayload{Name: "   "}
	if errs := Suite(&p); errs.Empty() || len(errs["name"]) == 0 {
		t.Fatalf("expected name error for blank name, got %v", errs)
	}

	p = SuitePayload{Name: strings.Repeat("x", SuiteNameMax+1)}
	if errs := Suite(&p); errs.Empty() || len(errs["name"]) == 0 {
		t.Fatalf("expected name error for overlong name, got %v", errs)
	}
}

// Limits count characters, not bytes. A 30-character multibyte name is 90
// bytes but still well under the 50-character cap.
func TestSuiteNameLimitCountsRunes(t *testing.T) {
	p := SuitePayload{Name: strings.Repeat("あ", 30)}
	if errs := Suite(&p); !errs.Empty() {
		t.Fatalf("valid 30-char name rejected: %v", errs)
	}

	p = SuitePayload{Name: strings.Repeat("あ", SuiteNameMax+1)}
	if errs := Suite(&p); len(errs["name"]) == 0 {
		t.Fatalf("expected name error for 51-char name, got %v", errs)
	}
}

func TestSuiteRejectsNegativeNumbers(t *testing.T) {
	p := SuitePayload{
		Name:      "Garden Suite",
		Rate:      decimal.RequireFromString("-0.01"),
		Sqft:      -1,
		Occupancy: -2,
	}
	errs := Suite(&p)
	for _, field := range []string{"rate", "sqft", "occupancy"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestSuiteUpdateIDMismatch(t *testing.T) {
	p := SuitePayload{ID: 6, Name: "Garden Suite"}
	errs := SuiteUpdate(5, &p)
	if len(errs["id"]) == 0 {
		t.Fatalf("expected id mismatch error, got %v", errs)
	}

	p = SuitePayload{ID: 5, Name: "Garden Suite"}
	if errs := SuiteUpdate(5, &p); !errs.Empty() {
		t.Fatalf("expected matching ids to pass, got %v", errs)
	}
}

func TestAmenityNameLimitIsWiderThanSuite(t *testing.T) {
	name := strings.Repeat("y", AmenityNameMax)
	p := AmenityPayload{Name: name}
	if errs := Amenity(&p); !errs.Empty() {
		t.Fatalf("expected %d-char amenity name to pass, got %v", AmenityNameMax, errs)
	}
	p = AmenityPayload{Name: name + "y"}
	if errs := Amenity(&p); errs.Empty() {
		t.Fatal("expected overlong amenity name to fail")
	}
}

func TestRegistrationNormalizesAndDefaults(t *testing.T) {
	p := RegisterPayload{Email: "  Ada@Example.COM ", Name: "Ada", Password: "secret"}
	errs := Registration(&p)
	if !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if p.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", p.Email)
	}
	if p.Role != DefaultRole {
		t.Fatalf("expected default role %q, got %q", DefaultRole, p.Role)
	}
}

func TestRegistrationRejectsBadEmail(t *testing.T) {
	for _, email := range []string{"", "nope", "a@b", "two words@example.com"} {
		p := RegisterPayload{Email: email, Name: "Ada", Password: "secret"}
		if errs := Registration(&p); len(errs["email"]) == 0 {
			t.Errorf("expected email error for %q, got %v", email, errs)
		}
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	p := LoginPayload{}
	errs := Login(&p)
	if len(errs["email"]) == 0 || len(errs["password"]) == 0 {
		t.Fatalf("expected errors for both fields, got %v", errs)
	}
}
