package handlerutil

import (
	"globetrek/cmd/server/handlers/httperr"
	"globetrek/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// envelope is the uniform success response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK writes a 200 success envelope with optional data.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(envelope{Success: true, Data: data})
}

// OKMessage writes a 200 success envelope with a message and no data.
func OKMessage(c *fiber.Ctx, message string) error {
	return c.JSON(envelope{Success: true, Message: message})
}

// Created writes a 201 success envelope with data.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(201).JSON(envelope{Success: true, Data: data})
}

// VerifiedEmail extracts the session email placed in the context by the
// session guard. Its absence means the guard never ran for this route.
func VerifiedEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals("userEmail").(string)
	if !ok || email == "" {
		logger.L().Error("verified email not found in context", "path", c.Path())
		return "", httperr.Fail(httperr.ErrForbidden)
	}
	return email, nil
}

// ExtractSpotID parses the :id route parameter. A malformed identifier is a
// 400, distinct from a well-formed id that matches nothing (404 later).
func ExtractSpotID(c *fiber.Ctx, handlerName string) (bson.ObjectID, error) {
	idStr := c.Params("id")
	if idStr == "" {
		logger.L().Warn("missing spot id parameter", "handler", handlerName, "path", c.Path())
		return bson.ObjectID{}, httperr.Fail(httperr.ErrBadRequest)
	}

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		logger.L().Warn("invalid spot id parameter", "handler", handlerName, "idStr", idStr, "error", err)
		return bson.ObjectID{}, httperr.Fail(httperr.New(400, "invalid tourist spot id"))
	}

	return id, nil
}

// ParseBody parses the JSON request body into req.
func ParseBody(c *fiber.Ctx, req any, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}
	return nil
}
