package handler

import (
	"go-clinic-staff/internal/model"

	"github.com/gofiber/fiber/v2"
)

type PositionHandler struct{}

func NewPositionHandler() *PositionHandler {
	return &PositionHandler{}
}

// GetPositions returns the grouped position taxonomy and its derived sets
// GET /api/v1/positions
func (h *PositionHandler) GetPositions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"groups":                       model.PositionGroups(),
		"positions":                    model.FlatPositions(),
		"assignable_patient_positions": model.AssignablePatientPositions(),
		"chart_delete_positions":       model.ChartDeletePositions(),
		"statuses":                     model.StaffStatuses,
	})
}
