package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gridlens/gridlens/internal/logging"
	"github.com/gridlens/gridlens/internal/models"
	"github.com/gridlens/gridlens/internal/series"
	"github.com/gridlens/gridlens/internal/source"
	"github.com/gridlens/gridlens/internal/utils"
)

// UploadVariable handles POST /v1/variables
func (h *Handler) UploadVariable(c *fiber.Ctx) error {
	var req models.UploadVariableRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}
	if req.Name == "" {
		return badRequest(c, "'name' field is required")
	}
	if len(req.Points) == 0 {
		return badRequest(c, "'points' field is required and must not be empty")
	}

	data, err := pointsToSeries(req.Points)
	if err != nil {
		return badRequest(c, err.Error())
	}

	meta, err := h.service.Upload(c.UserContext(), req.Name, req.Units, data, req.Replace)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		RequestID: logging.RequestIDFromContext(c.UserContext()),
		Variable:  meta,
	})
}

// ListVariables handles GET /v1/variables
func (h *Handler) ListVariables(c *fiber.Ctx) error {
	vars, err := h.service.ListVariables(c.UserContext())
	if err != nil {
		return err
	}
	if vars == nil {
		vars = []source.VariableMeta{}
	}
	return c.JSON(models.VariableListResponse{
		Variables: vars,
		Count:     len(vars),
	})
}

// GetVariable handles GET /v1/variables/:name
func (h *Handler) GetVariable(c *fiber.Ctx) error {
	name := c.Params("name")

	data, meta, err := h.service.GetVariable(c.UserContext(), name)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"variable": meta,
		"points":   data,
	})
}

// DeleteVariable handles DELETE /v1/variables/:name
func (h *Handler) DeleteVariable(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := h.service.DeleteVariable(c.UserContext(), name); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pointsToSeries converts upload payloads to a series. A null value becomes
// NaN so it is counted as missing rather than silently dropped here.
func pointsToSeries(points []models.PointPayload) (series.Series, error) {
	out := make(series.Series, 0, len(points))
	for i, p := range points {
		ts, err := utils.ToUnixMilli(p.Time)
		if err != nil {
			return nil, fmt.Errorf("point %d: %v", i, err)
		}
		val, ok := utils.ToFloat64(p.Value)
		if !ok {
			return nil, fmt.Errorf("point %d: 'value' must be a number or null", i)
		}
		out = append(out, series.DataPoint{Time: ts, Value: val})
	}
	return out, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: message,
		},
	})
}
