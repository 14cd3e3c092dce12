package staffview

import "github.com/google/uuid"

// Screen paths shared with the router.
const (
	ListPath   = "/staff"
	CreatePath = "/staff/new"
)

// DetailPath is the path of one staff member's detail screen.
func DetailPath(id uuid.UUID) string {
	return ListPath + "/" + id.String()
}
