package handler

import (
	"errors"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/internal/staffview"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StaffHandler struct {
	staffService service.StaffService
}

func NewStaffHandler(staffService service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// actor identifies who made a change for the audit columns. There is no
// authentication layer, so callers may name themselves via X-Actor.
func actor(c *fiber.Ctx) string {
	if a := c.Get("X-Actor"); a != "" {
		return a
	}
	return "system"
}

func parseStaffID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidDate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	msg := err.Error()
	switch status {
	case fiber.StatusNotFound:
		msg = "Staff member not found"
	case fiber.StatusInternalServerError:
		msg = "Store operation failed"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func toResponses(staff []model.Staff) []model.StaffResponse {
	out := make([]model.StaffResponse, len(staff))
	for i := range staff {
		out[i] = staff[i].ToResponse()
	}
	return out
}

// GetStaff returns the filtered, sorted staff list
// GET /api/v1/staff?search=&position=
func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	var q service.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query"})
	}

	list, err := h.staffService.ListStaff(q)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":        toResponses(list.Items),
		"total":       len(list.Items),
		"total_staff": list.TotalStaff,
		"empty_state": list.EmptyState(),
	})
}

// GetStaffMember returns a single staff member
// GET /api/v1/staff/:id
func (h *StaffHandler) GetStaffMember(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	staff, err := h.staffService.GetStaffByID(id)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"error": "Staff member not found",
				"back":  staffview.ListPath,
			})
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": staff.ToResponse()})
}

// CreateStaff handles the creation form
// POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	var req service.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	staff, err := h.staffService.CreateStaff(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	location := staffview.DetailPath(staff.ID)
	c.Location(location)
	return c.Status(201).JSON(fiber.Map{
		"message":  "Staff member created successfully",
		"data":     staff.ToResponse(),
		"location": location,
	})
}

// UpdateStaff saves a staged edit buffer
// PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	var req service.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	staff, err := h.staffService.UpdateStaff(id, &req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Staff member updated successfully",
		"data":    staff.ToResponse(),
	})
}

// DeleteStaff removes a staff member
// DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	if err := h.staffService.DeleteStaff(id, actor(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Staff member deleted successfully",
		"location": staffview.ListPath,
	})
}

// GetAssignedPatients returns the staff member's "my patients" list
// GET /api/v1/staff/:id/patients
func (h *StaffHandler) GetAssignedPatients(c *fiber.Ctx) error {
	id, err := parseStaffID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	patients, err := h.staffService.AssignedPatients(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  patients,
		"total": len(patients),
	})
}

// GetPatients returns every patient for the assignment checklist
// GET /api/v1/patients
func (h *StaffHandler) GetPatients(c *fiber.Ctx) error {
	patients, err := h.staffService.GetPatients()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch patients"})
	}
	return c.JSON(fiber.Map{"data": patients})
}
