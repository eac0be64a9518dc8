package spots

import (
	"context"
	"errors"

	"globetrek/cmd/server/handlers/handlerutil"
	"globetrek/cmd/server/handlers/httperr"
	"globetrek/internal/logger"
	"globetrek/internal/services/spots"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service defines the interface for the spots service
type Service interface {
	Create(ctx context.Context, req spots.CreateSpotRequest) (bson.ObjectID, error)
	ListAll(ctx context.Context) ([]*spots.TouristSpot, error)
	ListByOwner(ctx context.Context, email, verifiedEmail string) ([]*spots.TouristSpot, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*spots.TouristSpot, error)
	Update(ctx context.Context, id bson.ObjectID, req spots.UpdateSpotRequest) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// Handlers contains the tourist-spot HTTP handlers
type Handlers struct {
	service Service
}

// NewHandlers creates new spots handlers
func NewHandlers(service Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// List returns every spot. An empty collection answers 404, not an empty
// 200 array; callers depend on that exact behavior.
func (h *Handlers) List(c *fiber.Ctx) error {
	list, err := h.service.ListAll(c.Context())
	if err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			return httperr.Fail(httperr.New(404, "no tourist spots found"))
		}
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, list)
}

// ListByOwner returns the spots owned by the :email parameter. The session
// guard must have run; the parameter has to match the verified identity.
func (h *Handlers) ListByOwner(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return httperr.Fail(httperr.New(400, "email parameter is required"))
	}

	verified, err := handlerutil.VerifiedEmail(c)
	if err != nil {
		return err
	}

	list, err := h.service.ListByOwner(c.Context(), email, verified)
	if err != nil {
		if errors.Is(err, spots.ErrOwnerMismatch) {
			return httperr.Fail(httperr.ErrForbidden)
		}
		if errors.Is(err, spots.ErrSpotNotFound) {
			return httperr.Fail(httperr.New(404, "no tourist spots found"))
		}
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, list)
}

// Get returns a single spot by id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractSpotID(c, "Get")
	if err != nil {
		return err
	}

	spot, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			return httperr.Fail(httperr.New(404, spots.ErrSpotNotFound.Error()))
		}
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, spot)
}

// Create inserts a new spot and answers 201 with the assigned id
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req spots.CreateSpotRequest
	if err := handlerutil.ParseBody(c, &req, "Create"); err != nil {
		return err
	}

	id, err := h.service.Create(c.Context(), req)
	if err != nil {
		logger.L().Error("create spot failed", "handler", "Create", "error", err)
		return httperr.Fail(httperr.New(500, err.Error()))
	}

	return handlerutil.Created(c, spots.CreateSpotResponse{InsertedID: id.Hex()})
}

// Update replaces the editable fields of a spot. Zero documents modified is
// reported as a write failure (500); the store cannot tell a missing id from
// an update that changed nothing.
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractSpotID(c, "Update")
	if err != nil {
		return err
	}

	var req spots.UpdateSpotRequest
	if err := handlerutil.ParseBody(c, &req, "Update"); err != nil {
		return err
	}

	if err := h.service.Update(c.Context(), id, req); err != nil {
		return httperr.Fail(httperr.New(500, err.Error()))
	}

	return handlerutil.OKMessage(c, "tourist spot updated")
}

// Delete removes a spot and its hosted image, if any
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractSpotID(c, "Delete")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			return httperr.Fail(httperr.New(404, spots.ErrSpotNotFound.Error()))
		}
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OKMessage(c, "tourist spot deleted")
}
