package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/suites-api/internal/model"
	"github.com/stayhub/suites-api/internal/queue"
	"github.com/stayhub/suites-api/internal/repository"
	"github.com/stayhub/suites-api/internal/utils"
	"github.com/stayhub/suites-api/internal/validate"
)

// SuiteHandler bundles the repositories behind the /api/suites endpoints.
type SuiteHandler struct {
	Suites    *repository.SuiteRepo
	Amenities *repository.AmenityRepo
	Links     *repository.LinkRepo
	Events    *queue.Publisher
}

func NewSuiteHandler(suites *repository.SuiteRepo, amenities *repository.AmenityRepo, links *repository.LinkRepo, events *queue.Publisher) *SuiteHandler {
	if suites == nil || amenities == nil || links == nil {
		panic("nil repository passed to NewSuiteHandler")
	}
	return &SuiteHandler{Suites: suites, Amenities: amenities, Links: links, Events: events}
}

// List handles GET /api/suites. Suites come back in insertion order, each
// carrying its linked amenities. The amenities for every suite are loaded
// with one join query and merged in memory, not one lookup per suite.
func (h *SuiteHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	suites, err := h.Suites.List(ctx)
	if err != nil {
		log.Printf("suite list failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not retrieve suites", nil)
	}
	bySuite, err := h.Links.AmenitiesBySuite(ctx)
	if err != nil {
		log.Printf("suite amenity load failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not retrieve suites", nil)
	}
	for _, s := range suites {
		s.Amenities = bySuite[s.ID]
	}
	return utils.OK(c, http.StatusOK, "Suites retrieved successfully", suites)
}

// GetByID handles GET /api/suites/:id. An id that cannot identify a record
// (non-numeric or ≤ 0) is a not-found without a lookup.
func (h *SuiteHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
	}
	ctx := c.Request().Context()
	s, err := h.Suites.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSuiteNotFound) {
			return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
		}
		log.Printf("suite get %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not retrieve suite", nil)
	}
	if s.Amenities, err = h.Links.AmenitiesForSuite(ctx, id); err != nil {
		log.Printf("suite %d amenity load failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not retrieve suite", nil)
	}
	return utils.OK(c, http.StatusOK, "Suite retrieved successfully", s)
}

// Create handles POST /api/suites. The name-uniqueness check here is the
// fast path with the friendlier message; a racing duplicate still fails on
// the unique index and maps to the same 409.
func (h *SuiteHandler) Create(c echo.Context) error {
	var p validate.SuitePayload
	if err := c.Bind(&p); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if errs := validate.Suite(&p); !errs.Empty() {
		return utils.Fail(c, http.StatusBadRequest, "suite payload is invalid", errs)
	}

	ctx := c.Request().Context()
	taken, err := h.Suites.NameExists(ctx, p.Name, 0)
	if err != nil {
		log.Printf("suite name check failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not create suite", nil)
	}
	if taken {
		return utils.Fail(c, http.StatusConflict, "a suite with the name '"+p.Name+"' already exists", nil)
	}

	s := &model.Suite{
		Name:        p.Name,
		Details:     p.Details,
		Rate:        p.Rate,
		Sqft:        p.Sqft,
		Occupancy:   p.Occupancy,
		ImageURL:    p.ImageURL,
		CreatedDate: time.Now().UTC(),
	}
	if err := h.Suites.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrNameTaken) {
			return utils.Fail(c, http.StatusConflict, "a suite with the name '"+p.Name+"' already exists", nil)
		}
		log.Printf("suite create failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not create suite", nil)
	}

	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: queue.EntitySuite, Action: queue.ActionCreated,
		ID: s.ID, Name: s.Name, OccurredAt: s.CreatedDate,
	})
	return utils.OK(c, http.StatusCreated, "Suite created successfully", s)
}

// Update handles PUT /api/suites/:id. The path id and payload id must match
// exactly; only the mutable fields are applied onto the stored record and
// UpdatedDate is stamped.
func (h *SuiteHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
	}
	var p validate.SuitePayload
	if err := c.Bind(&p); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if errs := validate.SuiteUpdate(id, &p); !errs.Empty() {
		return utils.Fail(c, http.StatusBadRequest, "suite payload is invalid", errs)
	}

	ctx := c.Request().Context()
	s, err := h.Suites.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSuiteNotFound) {
			return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
		}
		log.Printf("suite get %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not update suite", nil)
	}

	taken, err := h.Suites.NameExists(ctx, p.Name, id)
	if err != nil {
		log.Printf("suite name check failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not update suite", nil)
	}
	if taken {
		return utils.Fail(c, http.StatusConflict, "a suite with the name '"+p.Name+"' already exists", nil)
	}

	now := time.Now().UTC()
	s.Name = p.Name
	s.Details = p.Details
	s.Rate = p.Rate
	s.Sqft = p.Sqft
	s.Occupancy = p.Occupancy
	s.ImageURL = p.ImageURL
	s.UpdatedDate = &now

	if err := h.Suites.Update(ctx, s); err != nil {
		if errors.Is(err, repository.ErrNameTaken) {
			return utils.Fail(c, http.StatusConflict, "a suite with the name '"+p.Name+"' already exists", nil)
		}
		log.Printf("suite update %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not update suite", nil)
	}

	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: queue.EntitySuite, Action: queue.ActionUpdated,
		ID: s.ID, Name: s.Name, OccurredAt: now,
	})
	return utils.OK(c, http.StatusOK, "Suite updated successfully", s)
}

// Delete handles DELETE /api/suites/:id. The suite and its join rows go in
// one transaction; linked amenities themselves are untouched.
func (h *SuiteHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
	}
	ctx := c.Request().Context()
	if err := h.Suites.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSuiteNotFound) {
			return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
		}
		log.Printf("suite delete %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not delete suite", nil)
	}

	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: queue.EntitySuite, Action: queue.ActionDeleted,
		ID: id, OccurredAt: time.Now().UTC(),
	})
	return utils.OK(c, http.StatusOK, "Suite deleted successfully", nil)
}

// LinkAmenity handles POST /api/suites/:id/amenities/:amenityId. Both sides
// must exist; linking the same pair twice is a conflict.
func (h *SuiteHandler) LinkAmenity(c echo.Context) error {
	suiteID, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
	}
	amenityID, ok := pathID(c, "amenityId")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
	}

	ctx := c.Request().Context()
	if _, err := h.Suites.GetByID(ctx, suiteID); err != nil {
		if errors.Is(err, repository.ErrSuiteNotFound) {
			return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
		}
		log.Printf("suite get %d failed: %v", suiteID, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not link amenity", nil)
	}
	if _, err := h.Amenities.GetByID(ctx, amenityID); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
		}
		log.Printf("amenity get %d failed: %v", amenityID, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not link amenity", nil)
	}

	link, err := h.Links.Link(ctx, suiteID, amenityID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkExists) {
			return utils.Fail(c, http.StatusConflict, "amenity is already linked to this suite", nil)
		}
		if errors.Is(err, repository.ErrLinkParentMissing) {
			return utils.Fail(c, http.StatusNotFound, "suite or amenity not found", nil)
		}
		log.Printf("link suite %d amenity %d failed: %v", suiteID, amenityID, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not link amenity", nil)
	}
	return utils.OK(c, http.StatusCreated, "Amenity linked to suite", link)
}

// UnlinkAmenity handles DELETE /api/suites/:id/amenities/:amenityId.
func (h *SuiteHandler) UnlinkAmenity(c echo.Context) error {
	suiteID, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "suite not found", nil)
	}
	amenityID, ok := pathID(c, "amenityId")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
	}
	if err := h.Links.Unlink(c.Request().Context(), suiteID, amenityID); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return utils.Fail(c, http.StatusNotFound, "amenity is not linked to this suite", nil)
		}
		log.Printf("unlink suite %d amenity %d failed: %v", suiteID, amenityID, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not unlink amenity", nil)
	}
	return utils.OK(c, http.StatusOK, "Amenity unlinked from suite", nil)
}
