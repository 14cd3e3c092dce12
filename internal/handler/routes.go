package handler

import (
	"go-clinic-staff/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api/v1 and, when hub is set, the /ws feed.
func RegisterRoutes(app *fiber.App, staffHandler *StaffHandler, positionHandler *PositionHandler, hub *ws.Hub) {
	api := app.Group("/api/v1")

	api.Get("/positions", positionHandler.GetPositions)
	api.Get("/patients", staffHandler.GetPatients)

	staff := api.Group("/staff")
	staff.Get("/", staffHandler.GetStaff)
	staff.Post("/", staffHandler.CreateStaff)
	staff.Get("/:id", staffHandler.GetStaffMember)
	staff.Put("/:id", staffHandler.UpdateStaff)
	staff.Delete("/:id", staffHandler.DeleteStaff)
	staff.Get("/:id/patients", staffHandler.GetAssignedPatients)

	if hub == nil {
		return
	}

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
