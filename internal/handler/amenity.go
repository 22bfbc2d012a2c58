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

// AmenityHandler bundles the repositories behind the /api/amenities
// endpoints.
type AmenityHandler struct {
	Amenities *repository.AmenityRepo
	Events    *queue.Publisher
}

func NewAmenityHandler(amenities *repository.AmenityRepo, events *queue.Publisher) *AmenityHandler {
	if amenities == nil {
		panic("nil repository passed to NewAmenityHandler")
	}
	return &AmenityHandler{Amenities: amenities, Events: events}
}

// List handles GET /api/amenities.
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.Amenities.List(c.Request().Context())
	if err != nil {
		log.Printf("amenity list failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not retrieve amenities", nil)
	}
	return utils.OK(c, http.StatusOK, "Amenities retrieved successfully", amenities)
}

// GetByID handles GET /api/amenities/:id.
func (h *AmenityHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
	}
	a, err := h.Amenities.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
		}
		log.Printf("amenity get %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not retrieve amenity", nil)
	}
	return utils.OK(c, http.StatusOK, "Amenity retrieved successfully", a)
}

// Create handles POST /api/amenities.
func (h *AmenityHandler) Create(c echo.Context) error {
	var p validate.AmenityPayload
	if err := c.Bind(&p); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if errs := validate.Amenity(&p); !errs.Empty() {
		return utils.Fail(c, http.StatusBadRequest, "amenity payload is invalid", errs)
	}

	ctx := c.Request().Context()
	taken, err := h.Amenities.NameExists(ctx, p.Name, 0)
	if err != nil {
		log.Printf("amenity name check failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not create amenity", nil)
	}
	if taken {
		return utils.Fail(c, http.StatusConflict, "an amenity with the name '"+p.Name+"' already exists", nil)
	}

	a := &model.Amenity{
		Name:        p.Name,
		Description: p.Description,
		CreatedDate: time.Now().UTC(),
	}
	if err := h.Amenities.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNameTaken) {
			return utils.Fail(c, http.StatusConflict, "an amenity with the name '"+p.Name+"' already exists", nil)
		}
		log.Printf("amenity create failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not create amenity", nil)
	}

	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: queue.EntityAmenity, Action: queue.ActionCreated,
		ID: a.ID, Name: a.Name, OccurredAt: a.CreatedDate,
	})
	return utils.OK(c, http.StatusCreated, "Amenity created successfully", a)
}

// Update handles PUT /api/amenities/:id. Path and payload ids must match.
func (h *AmenityHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
	}
	var p validate.AmenityPayload
	if err := c.Bind(&p); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if errs := validate.AmenityUpdate(id, &p); !errs.Empty() {
		return utils.Fail(c, http.StatusBadRequest, "amenity payload is invalid", errs)
	}

	ctx := c.Request().Context()
	a, err := h.Amenities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
		}
		log.Printf("amenity get %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not update amenity", nil)
	}

	taken, err := h.Amenities.NameExists(ctx, p.Name, id)
	if err != nil {
		log.Printf("amenity name check failed: %v", err)
		return utils.Fail(c, http.StatusInternalServerError, "could not update amenity", nil)
	}
	if taken {
		return utils.Fail(c, http.StatusConflict, "an amenity with the name '"+p.Name+"' already exists", nil)
	}

	now := time.Now().UTC()
	a.Name = p.Name
	a.Description = p.Description
	a.UpdatedDate = &now

	if err := h.Amenities.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNameTaken) {
			return utils.Fail(c, http.StatusConflict, "an amenity with the name '"+p.Name+"' already exists", nil)
		}
		log.Printf("amenity update %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not update amenity", nil)
	}

	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: queue.EntityAmenity, Action: queue.ActionUpdated,
		ID: a.ID, Name: a.Name, OccurredAt: now,
	})
	return utils.OK(c, http.StatusOK, "Amenity updated successfully", a)
}

// Delete handles DELETE /api/amenities/:id. An amenity still linked to
// suites is deleted anyway; the links are removed in the same transaction
// and no referential error surfaces to the caller.
func (h *AmenityHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
	}
	if err := h.Amenities.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return utils.Fail(c, http.StatusNotFound, "amenity not found", nil)
		}
		log.Printf("amenity delete %d failed: %v", id, err)
		return utils.Fail(c, http.StatusInternalServerError, "could not delete amenity", nil)
	}

	_ = h.Events.Publish(c.Request().Context(), queue.CatalogEvent{
		Entity: queue.EntityAmenity, Action: queue.ActionDeleted,
		ID: id, OccurredAt: time.Now().UTC(),
	})
	return utils.OK(c, http.StatusOK, "Amenity deleted successfully", nil)
}
